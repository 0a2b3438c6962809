package engine

// RiskLevel is a regulatory exposure classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Risk classification parameters. Documented defaults; see the tests
// for the exact boundary behavior.
const (
	// openCriticalEscalation is the count of critical-severity
	// requirements in non_compliant or not_assessed state that forces
	// the risk to at least high.
	openCriticalEscalation = 3
	// criticalScoreFloor: an overall score below this is critical
	// regardless of anything else.
	criticalScoreFloor = 30

	riskLowBand    = 75
	riskMediumBand = 50
)

func riskOrdinal(r RiskLevel) int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	}
	return -1
}

// MaxRisk returns the more conservative of two risk levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if riskOrdinal(b) > riskOrdinal(a) {
		return b
	}
	return a
}

// ClassifyRisk maps a score and the open critical-severity gap count to
// a risk level. Ties always break toward the more conservative level.
func ClassifyRisk(b ScoreBreakdown, applicable []RequirementDefinition, statuses StatusMap) RiskLevel {
	if b.Overall < criticalScoreFloor {
		return RiskCritical
	}
	risk := riskForScore(b.Overall)
	openCritical := 0
	for _, r := range applicable {
		if r.Severity != SeverityCritical {
			continue
		}
		switch statuses.statusOf(r.ID) {
		case StatusNonCompliant, StatusNotAssessed:
			openCritical++
		}
	}
	if openCritical >= openCriticalEscalation {
		risk = MaxRisk(risk, RiskHigh)
	}
	return risk
}

func riskForScore(score int) RiskLevel {
	switch {
	case score >= riskLowBand:
		return RiskLow
	case score >= riskMediumBand:
		return RiskMedium
	case score >= criticalScoreFloor:
		return RiskHigh
	default:
		return RiskCritical
	}
}
