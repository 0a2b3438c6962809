package domain

import (
	"errors"
	"time"

	"kepler/internal/engine"
)

// ErrNotFound is returned by repositories when the requested row does
// not exist.
var ErrNotFound = errors.New("not found")

// Core persistence-side models. The engine's computed types live in
// internal/engine; these wrap its inputs with the identity and
// lifecycle the storage layer owns.

// Assessment is one operator's compliance assessment: the submitted
// profile plus the latest persisted score snapshot.
type Assessment struct {
	ID           string
	OperatorName string
	Profile      engine.OperatorProfile
	OverallScore *int
	Risk         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StatusRecord is a stored per-requirement status row. Created on
// first update, never deleted while the assessment exists.
type StatusRecord struct {
	AssessmentID  string
	RequirementID string
	Status        engine.Status
	Notes         string
	EvidenceNotes string
	TargetDate    *time.Time
	UpdatedAt     time.Time
}

// RescoreJob is a queued score recomputation triggered by a status
// change.
type RescoreJob struct {
	ID           string
	AssessmentID string
	Status       string // queued|running|completed|failed
	QueuedAt     time.Time
}
