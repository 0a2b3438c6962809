package engine

import (
	"math"
	"sort"
)

// ComplianceStatus classifies an overall score.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	CompliancePartial      ComplianceStatus = "partial"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
)

// Grade bands and status thresholds. Monotonic: a higher score never
// yields a worse grade or status.
const (
	gradeABand = 90
	gradeBBand = 75
	gradeCBand = 60
	gradeDBand = 40

	compliantThreshold = 75
	partialThreshold   = 40
)

// CategoryScore is one category's weighted sub-score.
type CategoryScore struct {
	Category   Category `json:"category"`
	Score      float64  `json:"score"`
	Weight     float64  `json:"weight"`
	Applicable int      `json:"applicable"`
	Excluded   int      `json:"excluded"`
}

// ScoreBreakdown is a pure derivation of (applicable requirements,
// status snapshot). It is recomputed on every request and never stored
// by the engine.
type ScoreBreakdown struct {
	Overall    int              `json:"overall"`
	Grade      string           `json:"grade"`
	Status     ComplianceStatus `json:"status"`
	Categories []CategoryScore  `json:"categories"`
}

// contribution maps a status to its scoring value. not_applicable is
// excluded from the denominator entirely and handled by the caller.
func contribution(s Status) float64 {
	switch s {
	case StatusCompliant:
		return 1.0
	case StatusPartial:
		return 0.5
	default: // not_assessed, non_compliant
		return 0.0
	}
}

// Score computes the weighted compliance score for the applicable
// requirements under the given status snapshot and category weights.
// A category with zero scoreable requirements scores 100: nothing
// applicable means vacuously satisfied, and empty denominators never
// divide. Rounding is half-up so identical inputs always produce the
// identical integer.
func Score(applicable []RequirementDefinition, statuses StatusMap, weights map[Category]float64) ScoreBreakdown {
	type bucket struct {
		sum      float64
		counted  int
		excluded int
		total    int
	}
	buckets := make(map[Category]*bucket, len(weights))
	for cat := range weights {
		buckets[cat] = &bucket{}
	}
	for _, r := range applicable {
		b, ok := buckets[r.Category]
		if !ok {
			// Catalog validation guarantees every category is
			// weighted; skip defensively rather than panic.
			continue
		}
		b.total++
		st := statuses.statusOf(r.ID)
		if st == StatusNotApplicable {
			b.excluded++
			continue
		}
		b.sum += contribution(st)
		b.counted++
	}

	cats := make([]Category, 0, len(weights))
	for cat := range weights {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	var overall float64
	scores := make([]CategoryScore, 0, len(cats))
	for _, cat := range cats {
		b := buckets[cat]
		score := 100.0
		if b.counted > 0 {
			score = b.sum / float64(b.counted) * 100.0
		}
		overall += score * weights[cat]
		scores = append(scores, CategoryScore{
			Category:   cat,
			Score:      score,
			Weight:     weights[cat],
			Applicable: b.total,
			Excluded:   b.excluded,
		})
	}

	rounded := roundHalfUp(overall)
	return ScoreBreakdown{
		Overall:    rounded,
		Grade:      gradeFor(rounded),
		Status:     statusFor(rounded),
		Categories: scores,
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func gradeFor(score int) string {
	switch {
	case score >= gradeABand:
		return "A"
	case score >= gradeBBand:
		return "B"
	case score >= gradeCBand:
		return "C"
	case score >= gradeDBand:
		return "D"
	default:
		return "F"
	}
}

func statusFor(score int) ComplianceStatus {
	switch {
	case score >= compliantThreshold:
		return ComplianceCompliant
	case score >= partialThreshold:
		return CompliancePartial
	default:
		return ComplianceNonCompliant
	}
}
