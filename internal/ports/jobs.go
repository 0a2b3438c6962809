package ports

import (
	"context"

	"kepler/internal/domain"
)

// RescoreJobRepository supports enqueueing and claiming score
// recomputation jobs. Claiming must be safe under concurrent workers.
type RescoreJobRepository interface {
	Enqueue(ctx context.Context, assessmentID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job domain.RescoreJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}
