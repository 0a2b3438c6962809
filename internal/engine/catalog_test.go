package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() Catalog {
	return Catalog{
		Framework:       "test",
		Name:            "Test",
		CategoryWeights: map[Category]float64{"a": 0.5, "b": 0.5},
		Requirements: []RequirementDefinition{
			{ID: "r1", Article: "Art. 1", Title: "One", Category: "a", Severity: SeverityMajor, Effort: EffortLow},
			{ID: "r2", Article: "Art. 2", Title: "Two", Category: "b", Severity: SeverityMinor, Effort: EffortMedium},
		},
	}
}

func TestCatalogValidate_OK(t *testing.T) {
	require.NoError(t, validCatalog().Validate())
}

func TestCatalogValidate_WeightsMustSumToOne(t *testing.T) {
	c := validCatalog()
	c.CategoryWeights["a"] = 0.6
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCatalog)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestCatalogValidate_DuplicateID(t *testing.T) {
	c := validCatalog()
	c.Requirements[1].ID = "r1"
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestCatalogValidate_UnweightedCategory(t *testing.T) {
	c := validCatalog()
	c.Requirements[0].Category = "unknown"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category has no weight")
}

func TestCatalogValidate_UnknownTierInConstraint(t *testing.T) {
	c := validCatalog()
	c.Requirements[0].Applies.ConstellationTiers = []ConstellationTier{"gigantic"}
	err := c.Validate()
	require.Error(t, err)
	var cerr *CatalogError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "r1", cerr.Requirement)
	assert.Contains(t, cerr.Reason, "unknown constellation tier")
}

func TestCatalogValidate_UnknownOrbit(t *testing.T) {
	c := validCatalog()
	c.Requirements[0].Applies.OrbitRegimes = []OrbitRegime{"VLEO"}
	assert.ErrorIs(t, c.Validate(), ErrMalformedCatalog)
}

func TestCatalogValidate_UnknownSeverity(t *testing.T) {
	c := validCatalog()
	c.Requirements[0].Severity = "catastrophic"
	assert.ErrorIs(t, c.Validate(), ErrMalformedCatalog)
}

func TestCatalogValidate_UnknownPostureKey(t *testing.T) {
	c := validCatalog()
	c.Requirements[0].PostureKey = "no-such-answer"
	assert.ErrorIs(t, c.Validate(), ErrMalformedCatalog)
}

func TestCatalogSetValidate_BadCrossReferenceKind(t *testing.T) {
	set := CatalogSet{
		EUSpaceAct: validCatalog(),
		NIS2:       validCatalog(),
		CrossReferences: []CrossReferenceMapping{
			{SourceArea: "x", TargetArticles: []string{"Art. 1"}, Kind: "overlapping"},
		},
	}
	assert.ErrorIs(t, set.Validate(), ErrMalformedCatalog)
}

func TestCatalogSetValidate_DuplicateJurisdiction(t *testing.T) {
	set := CatalogSet{
		EUSpaceAct: validCatalog(),
		NIS2:       validCatalog(),
		Jurisdictions: []JurisdictionInfo{
			{Code: "DE", Name: "Germany"},
			{Code: "DE", Name: "Germany again"},
		},
	}
	assert.ErrorIs(t, set.Validate(), ErrMalformedCatalog)
}

func TestConstraintEmpty(t *testing.T) {
	assert.True(t, Constraint{}.Empty())
	assert.False(t, Constraint{MinSatellites: 1}.Empty())
	assert.False(t, Constraint{RequiresPropulsion: boolPtr(false)}.Empty())
}
