package catalogs

import "kepler/internal/engine"

// CrossReferences returns the static cross-reference table relating
// national and US law areas to EU Space Act articles. Used to avoid
// double-compliance work: a superseded national rule is satisfied by
// meeting the act's corresponding article.
func CrossReferences() []engine.CrossReferenceMapping {
	return []engine.CrossReferenceMapping{
		{
			SourceArea:     "national debris mitigation rules",
			TargetArticles: []string{"Art. 43", "Art. 44"},
			Kind:           engine.RelationSuperseded,
			Rationale:      "The act's debris mitigation and disposal articles replace the comparable national mitigation conditions once in force.",
			Countries:      []string{"DE", "FR", "NL", "AT"},
		},
		{
			SourceArea:     "national licensing regimes",
			TargetArticles: []string{"Art. 6", "Art. 7", "Art. 8"},
			Kind:           engine.RelationComplementary,
			Rationale:      "National licenses remain required; the act harmonizes the criteria the national authority applies.",
			Countries:      []string{"DE", "FR", "LU", "NL", "AT", "BE"},
		},
		{
			SourceArea:     "national liability and insurance rules",
			TargetArticles: []string{"Art. 70", "Art. 71"},
			Kind:           engine.RelationParallel,
			Rationale:      "National liability regimes and the act's insurance obligations run in parallel; both cover thresholds apply.",
			Countries:      []string{"DE", "FR", "LU", "NL", "AT", "BE"},
		},
		{
			SourceArea:     "national registries",
			TargetArticles: []string{"Art. 90"},
			Kind:           engine.RelationComplementary,
			Rationale:      "Union registration complements, not replaces, national registry entries under the Registration Convention.",
		},
		{
			SourceArea:     "US FCC orbital debris rules (47 CFR 25.114)",
			TargetArticles: []string{"Art. 43", "Art. 44", "Art. 45"},
			Kind:           engine.RelationParallel,
			Rationale:      "US-licensed constellations face equivalent FCC disposal and collision-avoidance showings; compliance work can be shared.",
			Countries:      []string{"US"},
		},
		{
			SourceArea:     "US NOAA remote sensing licensing (51 USC 601)",
			TargetArticles: []string{"Art. 6"},
			Kind:           engine.RelationParallel,
			Rationale:      "Remote-sensing operators serving both markets hold a NOAA license alongside the act's authorization.",
			Countries:      []string{"US"},
		},
		{
			SourceArea:     "US FAA launch licensing (14 CFR 450)",
			TargetArticles: []string{"Art. 14"},
			Kind:           engine.RelationParallel,
			Rationale:      "Launches from US territory are FAA-licensed; the act's launch authorization covers Union-territory launches.",
			Countries:      []string{"US"},
		},
		{
			SourceArea:     "national cybersecurity conditions in space licenses",
			TargetArticles: []string{"Art. 60", "Art. 61"},
			Kind:           engine.RelationGap,
			Rationale:      "Most national space laws predate cybersecurity obligations; the act introduces them without a national counterpart.",
			Countries:      []string{"NL", "AT", "BE"},
		},
	}
}
