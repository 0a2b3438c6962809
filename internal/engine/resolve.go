package engine

// ResolveApplicable returns the subset of catalog requirements whose
// constraints all hold for the profile, in catalog order. Every present
// constraint must be satisfied; an absent constraint restricts nothing.
// Output order is the catalog's stored order so downstream numbering
// stays deterministic.
func ResolveApplicable(p *OperatorProfile, c Catalog) []RequirementDefinition {
	out := make([]RequirementDefinition, 0, len(c.Requirements))
	for _, r := range c.Requirements {
		if Matches(p, r.Applies) {
			out = append(out, r)
		}
	}
	return out
}

// Matches evaluates a declarative constraint set against a profile with
// AND semantics across all present constraints.
func Matches(p *OperatorProfile, c Constraint) bool {
	if len(c.OrbitRegimes) > 0 && !orbitIn(p.Orbit, c.OrbitRegimes) {
		return false
	}
	if len(c.ConstellationTiers) > 0 && !tierIn(p.ConstellationTier(), c.ConstellationTiers) {
		return false
	}
	if c.MinSatellites > 0 && p.SatelliteCount < c.MinSatellites {
		return false
	}
	if c.RequiresPropulsion != nil && p.Propulsion != *c.RequiresPropulsion {
		return false
	}
	if len(c.Maneuverability) > 0 && !maneuverIn(p.Maneuverability, c.Maneuverability) {
		return false
	}
	if len(c.Activities) > 0 && !anyActivity(p, c.Activities) {
		return false
	}
	return true
}

func orbitIn(o OrbitRegime, set []OrbitRegime) bool {
	for _, s := range set {
		if o == s {
			return true
		}
		// A multi-regime mission is constrained by every regime it
		// touches, so "multiple" matches any orbit restriction.
		if o == OrbitMultiple {
			return true
		}
	}
	return false
}

func tierIn(t ConstellationTier, set []ConstellationTier) bool {
	for _, s := range set {
		if t == s {
			return true
		}
	}
	return false
}

func maneuverIn(m Maneuverability, set []Maneuverability) bool {
	for _, s := range set {
		if m == s {
			return true
		}
	}
	return false
}

func anyActivity(p *OperatorProfile, set []ActivityType) bool {
	for _, a := range set {
		if p.HasActivity(a) {
			return true
		}
	}
	return false
}
