package engine

import "sort"

// Priority orders remediation work.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func priorityOrdinal(p Priority) int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	}
	return -1
}

// GapRecord is one applicable-but-unsatisfied requirement.
type GapRecord struct {
	RequirementID string   `json:"requirement_id"`
	Article       string   `json:"article"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	CurrentStatus Status   `json:"current_status"`
	RequiredStatus Status  `json:"required_status"`
	Priority      Priority `json:"priority"`
	Effort        Effort   `json:"effort"`
	Guidance      []string `json:"guidance,omitempty"`
}

// gapPriority derives remediation priority from requirement severity
// and current status. Critical severity with recorded non-compliance is
// the only way to reach the critical priority; an unassessed critical
// requirement is high because the exposure is unconfirmed.
func gapPriority(sev Severity, st Status) Priority {
	switch sev {
	case SeverityCritical:
		if st == StatusNonCompliant {
			return PriorityCritical
		}
		return PriorityHigh
	case SeverityMajor:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// AnalyzeGaps emits a gap for every applicable requirement whose status
// is neither compliant nor not_applicable. Output is grouped by
// priority descending; within a group the catalog order is preserved.
func AnalyzeGaps(applicable []RequirementDefinition, statuses StatusMap) []GapRecord {
	gaps := make([]GapRecord, 0, len(applicable))
	for _, r := range applicable {
		st := statuses.statusOf(r.ID)
		if st == StatusCompliant || st == StatusNotApplicable {
			continue
		}
		gaps = append(gaps, GapRecord{
			RequirementID:  r.ID,
			Article:        r.Article,
			Title:          r.Title,
			Category:       r.Category,
			CurrentStatus:  st,
			RequiredStatus: StatusCompliant,
			Priority:       gapPriority(r.Severity, st),
			Effort:         r.Effort,
			Guidance:       r.Guidance,
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return priorityOrdinal(gaps[i].Priority) > priorityOrdinal(gaps[j].Priority)
	})
	return gaps
}
