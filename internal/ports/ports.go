package ports

import (
	"context"

	"kepler/internal/engine"
)

// Assessor creates assessments, reports on them, and records
// requirement progress.
type Assessor interface {
	Create(ctx context.Context, operatorName string, profile engine.OperatorProfile) (id string, result engine.UnifiedResult, err error)
	Report(ctx context.Context, assessmentID string) (engine.UnifiedResult, error)
	RecordStatus(ctx context.Context, assessmentID string, st engine.RequirementStatus) error
	Rescore(ctx context.Context, assessmentID string) (engine.UnifiedResult, error)
}

// Ranker ranks candidate jurisdictions against preferences.
type Ranker interface {
	Rank(ctx context.Context, candidates []string, prefs engine.Preferences) ([]engine.JurisdictionScore, error)
}
