package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"kepler/internal/domain"
)

// Enqueue creates a queued rescore job for the assessment. Repeated
// enqueues while a queued job exists collapse into one row so a burst
// of status updates triggers a single recomputation.
func (db *DB) Enqueue(ctx context.Context, assessmentID string) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO rescore_jobs (assessment_id)
		VALUES ($1)
		ON CONFLICT (assessment_id) WHERE status = 'queued'
		DO UPDATE SET queued_at = now()
		RETURNING id
	`, assessmentID).Scan(&id)
	return id, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it
// running.
func (db *DB) ClaimNext(ctx context.Context) (job domain.RescoreJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		SELECT id, assessment_id, queued_at FROM rescore_jobs
		WHERE status = 'queued'
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&job.ID, &job.AssessmentID, &job.QueuedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE rescore_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return job, false, err
	}
	job.Status = "running"
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
		UPDATE rescore_jobs SET status='completed', finished_at=now() WHERE id=$1
	`, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
		UPDATE rescore_jobs SET status='failed', finished_at=now(), last_error=$2 WHERE id=$1
	`, jobID, reason)
	return err
}
