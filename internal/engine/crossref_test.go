package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossrefTable() []CrossReferenceMapping {
	return []CrossReferenceMapping{
		{
			SourceArea:     "national debris rules",
			TargetArticles: []string{"Art. 43"},
			Kind:           RelationSuperseded,
			Countries:      []string{"DE", "FR"},
		},
		{
			SourceArea:     "national registries",
			TargetArticles: []string{"Art. 90"},
			Kind:           RelationComplementary,
		},
		{
			SourceArea:     "unrelated area",
			TargetArticles: []string{"Art. 999"},
			Kind:           RelationParallel,
		},
	}
}

func reqWithArticle(id, article string) RequirementDefinition {
	r := sev(id, "x", SeverityMajor)
	r.Article = article
	return r
}

func TestFindCrossReferences_IntersectsArticles(t *testing.T) {
	applicable := []RequirementDefinition{
		reqWithArticle("a", "Art. 43"),
		reqWithArticle("b", "Art. 90"),
	}
	got := FindCrossReferences(applicable, crossrefTable(), "")
	require.Len(t, got, 2)
	assert.Equal(t, "national debris rules", got[0].SourceArea)
	assert.Equal(t, "national registries", got[1].SourceArea)
}

func TestFindCrossReferences_JurisdictionFilter(t *testing.T) {
	applicable := []RequirementDefinition{reqWithArticle("a", "Art. 43")}

	got := FindCrossReferences(applicable, crossrefTable(), "DE")
	require.Len(t, got, 1)

	// NL is not in the mapping's country list; only country-agnostic
	// mappings would survive, and none of those intersect.
	got = FindCrossReferences(applicable, crossrefTable(), "NL")
	assert.Empty(t, got)
}

func TestFindCrossReferences_NoIntersection(t *testing.T) {
	applicable := []RequirementDefinition{reqWithArticle("a", "Art. 7")}
	assert.Empty(t, FindCrossReferences(applicable, crossrefTable(), ""))
}

func TestAppliesIn_EmptyCountryListIsGeneral(t *testing.T) {
	m := CrossReferenceMapping{SourceArea: "x", TargetArticles: []string{"Art. 1"}}
	assert.True(t, m.AppliesIn("DE"))
	assert.True(t, m.AppliesIn(""))
}
