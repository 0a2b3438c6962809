package ports

import (
	"context"

	"kepler/internal/domain"
	"kepler/internal/engine"
)

// AssessmentRepository stores assessments and their latest computed
// score snapshot.
type AssessmentRepository interface {
	Create(ctx context.Context, operatorName string, profile engine.OperatorProfile) (id string, err error)
	Get(ctx context.Context, id string) (domain.Assessment, error)
	SaveScore(ctx context.Context, id string, overall int, risk engine.RiskLevel) error
}

// StatusRepository manages per-requirement status rows for an
// assessment. The engine only ever sees a read-only snapshot.
type StatusRepository interface {
	Snapshot(ctx context.Context, assessmentID string) (engine.StatusMap, error)
	Upsert(ctx context.Context, rec domain.StatusRecord) error
}
