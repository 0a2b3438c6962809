package engine

import "math"

// Severity ranks how serious non-compliance with a requirement is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Effort is the static implementation effort attached to a requirement
// template. It is looked up, never computed.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Category groups requirements for weighted scoring. The set of
// categories and their weights is fixed per framework.
type Category string

// Constraint is a declarative applicability predicate over profile
// fields. Absent fields mean "no restriction"; present fields combine
// with AND semantics. Constraints are pure data so catalogs can be
// validated and tested independently of the matcher.
type Constraint struct {
	OrbitRegimes       []OrbitRegime       `json:"orbit_regimes,omitempty"`
	ConstellationTiers []ConstellationTier `json:"constellation_tiers,omitempty"`
	MinSatellites      int                 `json:"min_satellites,omitempty"`
	RequiresPropulsion *bool               `json:"requires_propulsion,omitempty"`
	Maneuverability    []Maneuverability   `json:"maneuverability,omitempty"`
	Activities         []ActivityType      `json:"activities,omitempty"`
}

// Empty reports whether the constraint restricts nothing.
func (c Constraint) Empty() bool {
	return len(c.OrbitRegimes) == 0 &&
		len(c.ConstellationTiers) == 0 &&
		c.MinSatellites == 0 &&
		c.RequiresPropulsion == nil &&
		len(c.Maneuverability) == 0 &&
		len(c.Activities) == 0
}

// RequirementDefinition is a static catalog entry for one regulatory
// obligation.
type RequirementDefinition struct {
	ID          string     `json:"id"`
	Article     string     `json:"article"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Severity    Severity   `json:"severity"`
	Applies     Constraint `json:"applies"`
	Evidence    []string   `json:"evidence,omitempty"`
	Guidance    []string   `json:"guidance,omitempty"`
	StandardRef string     `json:"standard_ref,omitempty"`
	Effort      Effort     `json:"effort"`
	// PostureKey links a requirement to one of the ten cybersecurity
	// posture answers; the aggregator synthesizes a status from the
	// profile when no explicit status is recorded.
	PostureKey string `json:"posture_key,omitempty"`
}

// Catalog is the versioned requirement list for one framework.
type Catalog struct {
	Framework       string               `json:"framework"`
	Name            string               `json:"name"`
	Version         string               `json:"version"`
	CategoryWeights map[Category]float64 `json:"category_weights"`
	Requirements    []RequirementDefinition `json:"requirements"`
}

var validOrbits = map[OrbitRegime]struct{}{
	OrbitLEO: {}, OrbitMEO: {}, OrbitGEO: {}, OrbitHEO: {},
	OrbitSSO: {}, OrbitCislunar: {}, OrbitMultiple: {},
}

var validTiers = map[ConstellationTier]struct{}{
	TierSingle: {}, TierSmall: {}, TierMedium: {}, TierLarge: {}, TierMega: {},
}

var validManeuverability = map[Maneuverability]struct{}{
	ManeuverFull: {}, ManeuverLimited: {}, ManeuverNone: {},
}

var validSeverities = map[Severity]struct{}{
	SeverityCritical: {}, SeverityMajor: {}, SeverityMinor: {},
}

var validEfforts = map[Effort]struct{}{
	EffortLow: {}, EffortMedium: {}, EffortHigh: {},
}

// Validate checks the catalog for internal consistency: unique ids,
// known enum values in constraints, category weights summing to 1.0,
// and every requirement's category carrying a weight. It is intended to
// run at process start so bad data never reaches a request.
func (c Catalog) Validate() error {
	if c.Framework == "" {
		return &CatalogError{Framework: "?", Reason: "framework id is empty"}
	}
	var sum float64
	for cat, w := range c.CategoryWeights {
		if w < 0 {
			return &CatalogError{Framework: c.Framework, Reason: "negative weight for category " + string(cat)}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return &CatalogError{Framework: c.Framework, Reason: "category weights do not sum to 1.0"}
	}
	seen := make(map[string]struct{}, len(c.Requirements))
	for _, r := range c.Requirements {
		if r.ID == "" {
			return &CatalogError{Framework: c.Framework, Reason: "requirement with empty id"}
		}
		if _, dup := seen[r.ID]; dup {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "duplicate id"}
		}
		seen[r.ID] = struct{}{}
		if r.Title == "" || r.Article == "" {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "missing title or article"}
		}
		if _, ok := c.CategoryWeights[r.Category]; !ok {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "category has no weight: " + string(r.Category)}
		}
		if _, ok := validSeverities[r.Severity]; !ok {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown severity: " + string(r.Severity)}
		}
		if _, ok := validEfforts[r.Effort]; !ok {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown effort: " + string(r.Effort)}
		}
		for _, o := range r.Applies.OrbitRegimes {
			if _, ok := validOrbits[o]; !ok {
				return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown orbit regime: " + string(o)}
			}
		}
		for _, t := range r.Applies.ConstellationTiers {
			if _, ok := validTiers[t]; !ok {
				return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown constellation tier: " + string(t)}
			}
		}
		for _, m := range r.Applies.Maneuverability {
			if _, ok := validManeuverability[m]; !ok {
				return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown maneuverability level: " + string(m)}
			}
		}
		if r.Applies.MinSatellites < 0 {
			return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "negative minimum satellite count"}
		}
		if r.PostureKey != "" {
			var probe CyberPosture
			if _, known := probe.Answer(r.PostureKey); !known {
				return &CatalogError{Framework: c.Framework, Requirement: r.ID, Reason: "unknown posture key: " + r.PostureKey}
			}
		}
	}
	return nil
}
