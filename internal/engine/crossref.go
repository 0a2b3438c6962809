package engine

// RelationKind classifies how a national or legacy rule relates to an
// overarching framework obligation.
type RelationKind string

const (
	RelationSuperseded    RelationKind = "superseded"
	RelationComplementary RelationKind = "complementary"
	RelationParallel      RelationKind = "parallel"
	RelationGap           RelationKind = "gap"
)

// CrossReferenceMapping is a static cross-reference table entry linking
// a source law area to target-framework articles.
type CrossReferenceMapping struct {
	SourceArea     string       `json:"source_area"`
	TargetArticles []string     `json:"target_articles"`
	Kind           RelationKind `json:"kind"`
	Rationale      string       `json:"rationale"`
	Countries      []string     `json:"countries,omitempty"`
}

// AppliesIn reports whether the mapping is relevant for the given
// country code. An empty country list means the mapping is general.
func (m CrossReferenceMapping) AppliesIn(country string) bool {
	if len(m.Countries) == 0 {
		return true
	}
	for _, c := range m.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// FindCrossReferences filters the static mapping table to entries whose
// target articles intersect the applicable requirement set, optionally
// restricted to one jurisdiction. Pure filtering, no scoring; table
// order is preserved.
func FindCrossReferences(applicable []RequirementDefinition, mappings []CrossReferenceMapping, jurisdiction string) []CrossReferenceMapping {
	articles := make(map[string]struct{}, len(applicable))
	for _, r := range applicable {
		articles[r.Article] = struct{}{}
	}
	var out []CrossReferenceMapping
	for _, m := range mappings {
		if jurisdiction != "" && !m.AppliesIn(jurisdiction) {
			continue
		}
		for _, a := range m.TargetArticles {
			if _, ok := articles[a]; ok {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
