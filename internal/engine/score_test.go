package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sev(id string, cat Category, s Severity) RequirementDefinition {
	return RequirementDefinition{
		ID: id, Article: "Art. " + id, Title: "Requirement " + id,
		Category: cat, Severity: s, Effort: EffortLow,
	}
}

func statusMap(pairs map[string]Status) StatusMap {
	m := make(StatusMap, len(pairs))
	for id, s := range pairs {
		m[id] = RequirementStatus{RequirementID: id, Status: s}
	}
	return m
}

func TestScore_AllCompliant(t *testing.T) {
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor), sev("b", "x", SeverityMinor)}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusCompliant, "b": StatusCompliant}), weights)
	assert.Equal(t, 100, b.Overall)
	assert.Equal(t, "A", b.Grade)
	assert.Equal(t, ComplianceCompliant, b.Status)
}

func TestScore_PartialHalfCounts(t *testing.T) {
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor), sev("b", "x", SeverityMajor)}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusCompliant, "b": StatusPartial}), weights)
	assert.Equal(t, 75, b.Overall)
	assert.Equal(t, "B", b.Grade)
}

func TestScore_NotApplicableExcludedFromDenominator(t *testing.T) {
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor), sev("b", "x", SeverityMajor)}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusCompliant, "b": StatusNotApplicable}), weights)
	assert.Equal(t, 100, b.Overall)
	require.Len(t, b.Categories, 1)
	assert.Equal(t, 1, b.Categories[0].Excluded)
}

func TestScore_VacuousCategoryScoresHundred(t *testing.T) {
	// Category "y" is weighted but has no applicable requirements: it
	// scores 100 and never divides by zero.
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor)}
	weights := map[Category]float64{"x": 0.6, "y": 0.4}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusNonCompliant}), weights)
	require.Len(t, b.Categories, 2)
	for _, c := range b.Categories {
		if c.Category == "y" {
			assert.Equal(t, 100.0, c.Score)
			assert.Zero(t, c.Applicable)
		}
	}
	// 0*0.6 + 100*0.4 = 40
	assert.Equal(t, 40, b.Overall)
}

func TestScore_AllNotApplicableIsVacuous(t *testing.T) {
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor)}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusNotApplicable}), weights)
	assert.Equal(t, 100, b.Overall)
}

func TestScore_MissingStatusReadsNotAssessed(t *testing.T) {
	reqs := []RequirementDefinition{sev("a", "x", SeverityMajor)}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, StatusMap{}, weights)
	assert.Equal(t, 0, b.Overall)
	assert.Equal(t, "F", b.Grade)
	assert.Equal(t, ComplianceNonCompliant, b.Status)
}

func TestScore_StatusMonotonicity(t *testing.T) {
	// Upgrading a single status not_compliant → partial → compliant
	// never decreases the overall score.
	reqs := []RequirementDefinition{
		sev("a", "x", SeverityCritical),
		sev("b", "x", SeverityMajor),
		sev("c", "y", SeverityMinor),
	}
	weights := map[Category]float64{"x": 0.7, "y": 0.3}
	base := map[string]Status{"a": StatusNonCompliant, "b": StatusPartial, "c": StatusCompliant}

	prev := -1
	for _, upgrade := range []Status{StatusNonCompliant, StatusPartial, StatusCompliant} {
		statuses := map[string]Status{"b": base["b"], "c": base["c"], "a": upgrade}
		b := Score(reqs, statusMap(statuses), weights)
		assert.GreaterOrEqual(t, b.Overall, prev, "upgrade to %s", upgrade)
		prev = b.Overall
	}
}

func TestScore_Deterministic(t *testing.T) {
	reqs := []RequirementDefinition{
		sev("a", "x", SeverityCritical),
		sev("b", "y", SeverityMajor),
		sev("c", "z", SeverityMinor),
	}
	weights := map[Category]float64{"x": 0.5, "y": 0.3, "z": 0.2}
	st := statusMap(map[string]Status{"a": StatusPartial, "b": StatusCompliant})

	first := Score(reqs, st, weights)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(reqs, st, weights))
	}
}

func TestScore_RoundHalfUp(t *testing.T) {
	// One of three requirements partial: 0.5/3*100 = 16.66… → 17.
	reqs := []RequirementDefinition{
		sev("a", "x", SeverityMajor), sev("b", "x", SeverityMajor), sev("c", "x", SeverityMajor),
	}
	weights := map[Category]float64{"x": 1.0}
	b := Score(reqs, statusMap(map[string]Status{"a": StatusPartial}), weights)
	assert.Equal(t, 17, b.Overall)
}

func TestScoreBreakdown_JSONRoundTrip(t *testing.T) {
	reqs := []RequirementDefinition{
		sev("a", "x", SeverityCritical), sev("b", "y", SeverityMajor),
	}
	weights := map[Category]float64{"x": 0.5, "y": 0.5}
	st := statusMap(map[string]Status{"a": StatusPartial, "b": StatusCompliant})
	original := Score(reqs, st, weights)

	raw, err := json.Marshal(original)
	require.NoError(t, err)
	var decoded ScoreBreakdown
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)

	// Re-scoring from the same inputs matches the decoded object: the
	// wire format loses nothing.
	assert.Equal(t, decoded, Score(reqs, st, weights))
}

func TestGradeBandsMonotonic(t *testing.T) {
	prev := "F"
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}
	for score := 0; score <= 100; score++ {
		g := gradeFor(score)
		assert.GreaterOrEqual(t, order[g], order[prev], "score %d", score)
		prev = g
	}
}
