// Package rescore runs background score recomputation. Status updates
// enqueue jobs; workers claim them with row locks so multiple instances
// can share one queue.
package rescore

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"kepler/internal/domain"
	"kepler/internal/ports"
)

var (
	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kepler_rescore_jobs_total",
		Help: "Rescore jobs processed, by outcome.",
	}, []string{"outcome"})

	jobsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kepler_rescore_jobs_in_flight",
		Help: "Rescore jobs currently being processed.",
	})
)

// Processor recomputes and persists the score for one assessment.
type Processor interface {
	Rescore(ctx context.Context, assessmentID string) error
}

// AssessorProcessor adapts the assessment service to the worker loop.
type AssessorProcessor struct {
	Assessor ports.Assessor
}

func (p AssessorProcessor) Rescore(ctx context.Context, assessmentID string) error {
	_, err := p.Assessor.Rescore(ctx, assessmentID)
	return err
}

// Run starts a dispatcher plus concurrency worker goroutines that claim
// queued jobs and process them until ctx is cancelled.
func Run(ctx context.Context, repo ports.RescoreJobRepository, processor Processor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan domain.RescoreJob, concurrency)

	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Error("job claim failed", zap.Error(err))
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				jobsInFlight.Inc()
				err := processor.Rescore(ctx, job.AssessmentID)
				jobsInFlight.Dec()
				if err != nil {
					jobsProcessed.WithLabelValues("failed").Inc()
					if mErr := repo.MarkFailed(ctx, job.ID, err.Error()); mErr != nil {
						log.Error("mark failed errored", zap.String("job_id", job.ID), zap.Error(mErr))
					}
					log.Warn("rescore job failed",
						zap.Int("worker", idx),
						zap.String("job_id", job.ID),
						zap.String("assessment_id", job.AssessmentID),
						zap.Error(err))
					continue
				}
				jobsProcessed.WithLabelValues("completed").Inc()
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Error("mark completed errored", zap.String("job_id", job.ID), zap.Error(err))
				}
				log.Debug("rescore job completed",
					zap.String("job_id", job.ID),
					zap.String("assessment_id", job.AssessmentID))
			}
		}(i)
	}
}
