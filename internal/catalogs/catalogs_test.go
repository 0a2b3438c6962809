package catalogs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kepler/internal/engine"
)

func TestLoad_AllCatalogsValid(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, set.EUSpaceAct.Requirements)
	assert.NotEmpty(t, set.NIS2.Requirements)
	assert.Len(t, set.National, 6)
	assert.NotEmpty(t, set.CrossReferences)
	assert.NotEmpty(t, set.Jurisdictions)
}

func TestRequirementIDsUniqueAcrossAllCatalogs(t *testing.T) {
	set := Default()
	seen := map[string]string{}
	check := func(c engine.Catalog) {
		for _, r := range c.Requirements {
			if prev, dup := seen[r.ID]; dup {
				t.Errorf("id %q appears in both %s and %s", r.ID, prev, c.Framework)
			}
			seen[r.ID] = c.Framework
		}
	}
	check(set.EUSpaceAct)
	check(set.NIS2)
	for _, c := range set.National {
		check(c)
	}
}

func TestNIS2_TenPostureLinkedRequirements(t *testing.T) {
	linked := map[string]string{}
	for _, r := range NIS2().Requirements {
		if r.PostureKey == "" {
			continue
		}
		if prev, dup := linked[r.PostureKey]; dup {
			t.Errorf("posture key %q linked from both %s and %s", r.PostureKey, prev, r.ID)
		}
		linked[r.PostureKey] = r.ID
	}
	assert.Len(t, linked, len(engine.PostureKeys))
}

func TestCrossReferences_TargetArticlesExistInEUCatalog(t *testing.T) {
	articles := map[string]struct{}{}
	for _, r := range EUSpaceAct().Requirements {
		articles[r.Article] = struct{}{}
	}
	for _, m := range CrossReferences() {
		for _, a := range m.TargetArticles {
			_, ok := articles[a]
			assert.True(t, ok, "mapping %q targets unknown article %q", m.SourceArea, a)
		}
	}
}

// Scenario: a mid-size German LEO constellation operator without a
// debris mitigation plan.
func TestScenario_GermanLEOConstellation(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	p := &engine.OperatorProfile{
		EstablishmentCountry: "DE",
		EntitySize:           engine.SizeMedium,
		Activities:           []engine.ActivityType{engine.ActivitySpacecraftOperator},
		Orbit:                engine.OrbitLEO,
		SatelliteCount:       50,
	}
	res, err := engine.Aggregate(p, set, nil)
	require.NoError(t, err)

	assert.True(t, res.EUSpaceAct.Applies)
	assert.Equal(t, engine.RegimeStandard, res.EUSpaceAct.Regime)

	found := false
	for _, a := range res.PriorityActions {
		if strings.Contains(strings.ToLower(a), "debris mitigation plan") {
			found = true
		}
	}
	assert.True(t, found, "priority actions should mention the debris mitigation plan, got %v", res.PriorityActions)
}

// Scenario: a large critical-infrastructure operator with no
// cybersecurity measures in place at all.
func TestScenario_EssentialEntityWithNoPosture(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	p := &engine.OperatorProfile{
		EstablishmentCountry: "DE",
		EntitySize:           engine.SizeLarge,
		CriticalInfraService: true,
		// Posture left at the zero value: all ten answers false.
	}
	res, err := engine.Aggregate(p, set, nil)
	require.NoError(t, err)

	assert.True(t, res.NIS2.Applies)
	assert.Equal(t, engine.ClassEssential, res.NIS2.Regime)
	assert.Equal(t, 10, res.NIS2.ComplianceGapCount)
	assert.Zero(t, res.NIS2.EstimatedReadiness)
}

func TestScenario_DefenseOnlyExemption(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	p := &engine.OperatorProfile{EstablishmentCountry: "EU", DefenseOnly: true}
	res, err := engine.Aggregate(p, set, nil)
	require.NoError(t, err)

	assert.False(t, res.EUSpaceAct.Applies)
	assert.Empty(t, res.EUSpaceAct.Requirements)
	assert.Contains(t, res.EUSpaceAct.Reason, "defense-only exemption")
}

func TestScenario_FullPipelineDeterminism(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	p := &engine.OperatorProfile{
		EstablishmentCountry: "LU",
		EntitySize:           engine.SizeMedium,
		Activities:           []engine.ActivityType{engine.ActivitySpacecraftOperator, engine.ActivityDataProvider},
		Orbit:                engine.OrbitLEO,
		SatelliteCount:       120,
		Maneuverability:      engine.ManeuverFull,
		Propulsion:           true,
		Jurisdictions:        []string{"LU", "NL", "DE"},
		Preferences:          engine.Preferences{FastProcessing: true, EnglishRequired: true, Startup: true},
	}
	st := engine.StatusMap{
		"eu-deb-01": {RequirementID: "eu-deb-01", Status: engine.StatusPartial},
		"eu-auth-01": {RequirementID: "eu-auth-01", Status: engine.StatusCompliant},
	}
	first, err := engine.Aggregate(p, set, st)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.Aggregate(p, set, st)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Luxembourg should outrank Germany for an English-preferring
	// startup wanting fast processing.
	require.NotEmpty(t, first.Rankings)
	assert.Equal(t, "LU", first.Rankings[0].Code)
}
