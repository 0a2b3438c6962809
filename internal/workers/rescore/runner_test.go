package rescore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"kepler/internal/domain"
)

type memJobs struct {
	mu        sync.Mutex
	queued    []domain.RescoreJob
	completed []string
	failed    map[string]string
}

func newMemJobs(assessmentIDs ...string) *memJobs {
	m := &memJobs{failed: map[string]string{}}
	for i, id := range assessmentIDs {
		m.queued = append(m.queued, domain.RescoreJob{
			ID:           string(rune('a'+i)) + "-job",
			AssessmentID: id,
			Status:       "queued",
			QueuedAt:     time.Now(),
		})
	}
	return m
}

func (m *memJobs) Enqueue(_ context.Context, assessmentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := assessmentID + "-job"
	m.queued = append(m.queued, domain.RescoreJob{ID: id, AssessmentID: assessmentID, Status: "queued"})
	return id, nil
}

func (m *memJobs) ClaimNext(context.Context) (domain.RescoreJob, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queued) == 0 {
		return domain.RescoreJob{}, false, nil
	}
	job := m.queued[0]
	m.queued = m.queued[1:]
	return job, true, nil
}

func (m *memJobs) MarkCompleted(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, jobID)
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, jobID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed[jobID] = reason
	return nil
}

type recordingProcessor struct {
	mu     sync.Mutex
	seen   []string
	failOn string
}

func (p *recordingProcessor) Rescore(_ context.Context, assessmentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, assessmentID)
	if assessmentID == p.failOn {
		return errors.New("boom")
	}
	return nil
}

func TestRun_ProcessesQueuedJobs(t *testing.T) {
	repo := newMemJobs("as-1", "as-2")
	proc := &recordingProcessor{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, repo, proc, 2, 10*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.completed) == 2
	}, 2*time.Second, 10*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, []string{"as-1", "as-2"}, proc.seen)
}

func TestRun_FailedJobsMarkedFailed(t *testing.T) {
	repo := newMemJobs("as-1")
	proc := &recordingProcessor{failOn: "as-1"}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, repo, proc, 1, 10*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.failed) == 1
	}, 2*time.Second, 10*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, "boom", repo.failed["a-job"])
	assert.Empty(t, repo.completed)
}

func TestRun_ZeroConcurrencyIsNoop(t *testing.T) {
	repo := newMemJobs("as-1")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, repo, &recordingProcessor{}, 0, 10*time.Millisecond, zap.NewNop())
	time.Sleep(50 * time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.queued, 1)
}
