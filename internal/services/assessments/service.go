// Package assessments orchestrates the scoring engine against stored
// assessments: it fetches profile and status snapshots, runs the pure
// engine, and persists the resulting overall score.
package assessments

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kepler/internal/domain"
	"kepler/internal/engine"
	"kepler/internal/ports"
)

var (
	ErrUnknownRequirement = errors.New("unknown requirement id")
	ErrInvalidStatus      = errors.New("invalid status value")
)

type Service struct {
	assessments ports.AssessmentRepository
	statuses    ports.StatusRepository
	jobs        ports.RescoreJobRepository
	catalogs    engine.CatalogSet
	knownIDs    map[string]struct{}
	log         *zap.Logger
}

func New(assessments ports.AssessmentRepository, statuses ports.StatusRepository, jobs ports.RescoreJobRepository, set engine.CatalogSet, log *zap.Logger) *Service {
	return &Service{
		assessments: assessments,
		statuses:    statuses,
		jobs:        jobs,
		catalogs:    set,
		knownIDs:    set.KnownIDs(),
		log:         log,
	}
}

// Create validates the profile through the engine, persists the
// assessment, and returns the initial result (everything not_assessed).
func (s *Service) Create(ctx context.Context, operatorName string, profile engine.OperatorProfile) (string, engine.UnifiedResult, error) {
	result, err := engine.Aggregate(&profile, s.catalogs, nil)
	if err != nil {
		return "", engine.UnifiedResult{}, err
	}
	id, err := s.assessments.Create(ctx, operatorName, profile)
	if err != nil {
		return "", engine.UnifiedResult{}, fmt.Errorf("create assessment: %w", err)
	}
	if err := s.assessments.SaveScore(ctx, id, unifiedScore(result), result.OverallRisk); err != nil {
		return "", engine.UnifiedResult{}, fmt.Errorf("save initial score: %w", err)
	}
	s.log.Info("assessment created",
		zap.String("assessment_id", id),
		zap.String("operator", operatorName),
		zap.Int("total_requirements", result.TotalRequirements),
		zap.String("risk", string(result.OverallRisk)))
	return id, result, nil
}

// Report recomputes the unified result from the current status
// snapshot. Results are pure derivations, so this is always fresh.
func (s *Service) Report(ctx context.Context, assessmentID string) (engine.UnifiedResult, error) {
	return s.compute(ctx, assessmentID, false)
}

// Rescore recomputes and persists the overall score. Used by the
// rescore worker after status changes.
func (s *Service) Rescore(ctx context.Context, assessmentID string) (engine.UnifiedResult, error) {
	return s.compute(ctx, assessmentID, true)
}

func (s *Service) compute(ctx context.Context, assessmentID string, persist bool) (engine.UnifiedResult, error) {
	a, err := s.assessments.Get(ctx, assessmentID)
	if err != nil {
		return engine.UnifiedResult{}, err
	}
	snapshot, err := s.statuses.Snapshot(ctx, assessmentID)
	if err != nil {
		return engine.UnifiedResult{}, fmt.Errorf("load status snapshot: %w", err)
	}
	result, err := engine.Aggregate(&a.Profile, s.catalogs, snapshot)
	if err != nil {
		return engine.UnifiedResult{}, err
	}
	for _, w := range result.Warnings {
		s.log.Warn("data integrity warning", zap.String("assessment_id", assessmentID), zap.String("warning", w))
	}
	if persist {
		if err := s.assessments.SaveScore(ctx, assessmentID, unifiedScore(result), result.OverallRisk); err != nil {
			return engine.UnifiedResult{}, fmt.Errorf("save score: %w", err)
		}
	}
	return result, nil
}

// RecordStatus validates and stores a requirement status, then
// enqueues a rescore job so the persisted score catches up.
func (s *Service) RecordStatus(ctx context.Context, assessmentID string, st engine.RequirementStatus) error {
	if !engine.ValidStatus(st.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, st.Status)
	}
	if _, ok := s.knownIDs[st.RequirementID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRequirement, st.RequirementID)
	}
	err := s.statuses.Upsert(ctx, domain.StatusRecord{
		AssessmentID:  assessmentID,
		RequirementID: st.RequirementID,
		Status:        st.Status,
		Notes:         st.Notes,
		EvidenceNotes: st.EvidenceNotes,
		TargetDate:    st.TargetDate,
	})
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	if _, err := s.jobs.Enqueue(ctx, assessmentID); err != nil {
		// The stored status is authoritative; a failed enqueue only
		// delays the persisted score until the next recomputation.
		s.log.Error("rescore enqueue failed", zap.String("assessment_id", assessmentID), zap.Error(err))
	}
	return nil
}

// unifiedScore picks the persisted headline number: the lowest overall
// score among applicable frameworks, the conservative summary of a
// multi-framework posture.
func unifiedScore(r engine.UnifiedResult) int {
	score := 100
	seen := false
	consider := func(fr engine.FrameworkResult) {
		if !fr.Applies {
			return
		}
		seen = true
		if fr.Score.Overall < score {
			score = fr.Score.Overall
		}
	}
	consider(r.EUSpaceAct)
	consider(r.NIS2)
	for _, n := range r.National {
		consider(n)
	}
	if !seen {
		return 0
	}
	return score
}
