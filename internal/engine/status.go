package engine

import "time"

// Status is the recorded state of one requirement within an assessment.
type Status string

const (
	StatusNotAssessed   Status = "not_assessed"
	StatusCompliant     Status = "compliant"
	StatusPartial       Status = "partial"
	StatusNonCompliant  Status = "non_compliant"
	StatusNotApplicable Status = "not_applicable"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNotAssessed, StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotApplicable:
		return true
	}
	return false
}

// RequirementStatus is the externally owned per-requirement record. The
// engine reads a snapshot of these; it never creates or mutates them.
type RequirementStatus struct {
	RequirementID string     `json:"requirement_id"`
	Status        Status     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	EvidenceNotes string     `json:"evidence_notes,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// StatusMap is a snapshot of requirement statuses keyed by requirement
// id. A missing entry means not_assessed.
type StatusMap map[string]RequirementStatus

// statusOf returns the recorded status for id, defaulting to
// not_assessed when absent or unset.
func (m StatusMap) statusOf(id string) Status {
	if rs, ok := m[id]; ok && rs.Status != "" {
		return rs.Status
	}
	return StatusNotAssessed
}

// KnownIDs returns the set of requirement ids across every catalog in
// the set. Used to detect statuses that reference ids no catalog
// defines.
func (s CatalogSet) KnownIDs() map[string]struct{} {
	known := make(map[string]struct{})
	add := func(c Catalog) {
		for _, r := range c.Requirements {
			known[r.ID] = struct{}{}
		}
	}
	add(s.EUSpaceAct)
	add(s.NIS2)
	for _, c := range s.National {
		add(c)
	}
	return known
}
