package engine

import (
	"fmt"
	"sort"
)

// Framework identifiers used throughout results and catalogs.
const (
	FrameworkEUSpaceAct = "eu-space-act"
	FrameworkNIS2       = "nis2"
)

// Regime tiers for the EU-style act and NIS2-style entity classes.
const (
	RegimeLight    = "light"
	RegimeStandard = "standard"

	ClassEssential = "essential"
	ClassImportant = "important"
)

// Gate reason strings. Stable: callers and tests match on them.
const (
	ReasonDefenseOnly      = "defense-only exemption: national security activities are excluded from the act"
	ReasonOutsideEU        = "not established in the EU and not serving the EU market"
	ReasonBelowNIS2Size    = "below NIS2 size thresholds and not serving critical infrastructure"
	ReasonNoJurisdictions  = "no candidate jurisdictions supplied"
)

// Timeline parameters (months). Additive per framework, capped.
const (
	euBaseMonthsLight    = 3
	euBaseMonthsStandard = 6
	nis2MonthsImportant  = 4
	nis2MonthsEssential  = 6
	timelineCapMonths    = 24
)

var nationalMonthsByProcessing = map[Level]int{
	LevelLow:    2,
	LevelMedium: 4,
	LevelHigh:   6,
}

// CatalogSet bundles the static data one Aggregate call reads: the two
// framework catalogs, national catalogs keyed by country code, the
// cross-reference table, and the jurisdiction data table. Loaded once
// at process start and shared read-only.
type CatalogSet struct {
	EUSpaceAct      Catalog
	NIS2            Catalog
	National        map[string]Catalog
	CrossReferences []CrossReferenceMapping
	Jurisdictions   []JurisdictionInfo
}

// Validate validates every catalog in the set.
func (s CatalogSet) Validate() error {
	if err := s.EUSpaceAct.Validate(); err != nil {
		return err
	}
	if err := s.NIS2.Validate(); err != nil {
		return err
	}
	codes := make([]string, 0, len(s.National))
	for code := range s.National {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if err := s.National[code].Validate(); err != nil {
			return err
		}
	}
	for _, m := range s.CrossReferences {
		if m.SourceArea == "" || len(m.TargetArticles) == 0 {
			return &CatalogError{Framework: "cross-references", Reason: "mapping missing source area or target articles"}
		}
		switch m.Kind {
		case RelationSuperseded, RelationComplementary, RelationParallel, RelationGap:
		default:
			return &CatalogError{Framework: "cross-references", Reason: "unknown relation kind: " + string(m.Kind)}
		}
	}
	seen := make(map[string]struct{}, len(s.Jurisdictions))
	for _, j := range s.Jurisdictions {
		if j.Code == "" {
			return &CatalogError{Framework: "jurisdictions", Reason: "entry with empty code"}
		}
		if _, dup := seen[j.Code]; dup {
			return &CatalogError{Framework: "jurisdictions", Reason: "duplicate code: " + j.Code}
		}
		seen[j.Code] = struct{}{}
	}
	return nil
}

// FrameworkResult is the per-framework pipeline output. A framework
// whose gate fails still yields a record with Applies=false and an
// explicit Reason; callers never see an absent result.
type FrameworkResult struct {
	Framework       string                  `json:"framework"`
	Applies         bool                    `json:"applies"`
	Reason          string                  `json:"reason,omitempty"`
	Regime          string                  `json:"regime,omitempty"`
	Requirements    []RequirementDefinition `json:"requirements"`
	Score           ScoreBreakdown          `json:"score"`
	Risk            RiskLevel               `json:"risk"`
	Gaps            []GapRecord             `json:"gaps"`
	CrossReferences []CrossReferenceMapping `json:"cross_references,omitempty"`
	// ComplianceGapCount and EstimatedReadiness are posture-derived and
	// only populated for the NIS2-style framework.
	ComplianceGapCount int     `json:"compliance_gap_count,omitempty"`
	EstimatedReadiness float64 `json:"estimated_readiness"`
	TimelineMonths     int     `json:"timeline_months"`
}

// UnifiedResult is the consolidated output for one profile across all
// frameworks.
type UnifiedResult struct {
	EUSpaceAct        FrameworkResult     `json:"eu_space_act"`
	NIS2              FrameworkResult     `json:"nis2"`
	National          []FrameworkResult   `json:"national,omitempty"`
	Rankings          []JurisdictionScore `json:"rankings,omitempty"`
	TotalRequirements int                 `json:"total_requirements"`
	OverallRisk       RiskLevel           `json:"overall_risk"`
	TimelineMonths    int                 `json:"timeline_months"`
	PriorityActions   []string            `json:"priority_actions"`
	// Warnings carries data-integrity notices such as statuses
	// referencing ids absent from every catalog; the caller should log
	// them. They never fail the computation.
	Warnings []string `json:"warnings,omitempty"`
}

// euGate reports whether the EU-style act applies, with a reason when
// it does not.
func euGate(p *OperatorProfile) (bool, string) {
	if p.DefenseOnly {
		return false, ReasonDefenseOnly
	}
	if !p.EstablishedInEU() && !p.EUMarketService {
		return false, ReasonOutsideEU
	}
	return true, ""
}

// nis2Gate reports whether the NIS2-style directive applies.
func nis2Gate(p *OperatorProfile) (bool, string) {
	if !p.EstablishedInEU() && !p.EUMarketService {
		return false, ReasonOutsideEU
	}
	if !p.CriticalInfraService && p.EntitySize != SizeLarge && p.EntitySize != SizeMedium {
		return false, ReasonBelowNIS2Size
	}
	return true, ""
}

// euRegime assigns the act's burden tier: light for single or small
// fleets (at most 10 satellites) run by micro or small entities,
// standard otherwise.
func euRegime(p *OperatorProfile) string {
	smallFleet := p.SatelliteCount <= 10
	smallEntity := p.EntitySize == SizeMicro || p.EntitySize == SizeSmall
	if smallFleet && smallEntity {
		return RegimeLight
	}
	return RegimeStandard
}

// nis2Class assigns the directive's entity classification.
func nis2Class(p *OperatorProfile) string {
	if p.EntitySize == SizeLarge || p.CriticalInfraService {
		return ClassEssential
	}
	return ClassImportant
}

// postureStatuses overlays synthesized statuses for posture-linked
// requirements onto the supplied snapshot: a posture answer of true
// reads as compliant, false as non_compliant. An explicit recorded
// status always wins.
func postureStatuses(p *OperatorProfile, c Catalog, statuses StatusMap) StatusMap {
	out := make(StatusMap, len(statuses)+len(c.Requirements))
	for id, rs := range statuses {
		out[id] = rs
	}
	for _, r := range c.Requirements {
		if r.PostureKey == "" {
			continue
		}
		if _, recorded := out[r.ID]; recorded {
			continue
		}
		answer, known := p.Posture.Answer(r.PostureKey)
		if !known {
			continue
		}
		st := StatusNonCompliant
		if answer {
			st = StatusCompliant
		}
		out[r.ID] = RequirementStatus{RequirementID: r.ID, Status: st}
	}
	return out
}

// runPipeline executes resolve → score → classify → gaps → correlate
// for one framework catalog.
func runPipeline(p *OperatorProfile, c Catalog, statuses StatusMap, crossrefs []CrossReferenceMapping, country string) FrameworkResult {
	applicable := ResolveApplicable(p, c)
	breakdown := Score(applicable, statuses, c.CategoryWeights)
	res := FrameworkResult{
		Framework:    c.Framework,
		Applies:      true,
		Requirements: applicable,
		Score:        breakdown,
		Risk:         ClassifyRisk(breakdown, applicable, statuses),
		Gaps:         AnalyzeGaps(applicable, statuses),
	}
	if len(crossrefs) > 0 {
		res.CrossReferences = FindCrossReferences(applicable, crossrefs, country)
	}
	return res
}

// orphanWarnings flags status ids absent from every catalog in the
// set. The statuses are a single snapshot across frameworks, so an id
// only counts as orphaned when no catalog knows it.
func orphanWarnings(set CatalogSet, statuses StatusMap) []string {
	known := set.KnownIDs()
	var orphans []string
	for id := range statuses {
		if _, ok := known[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	warnings := make([]string, 0, len(orphans))
	for _, id := range orphans {
		warnings = append(warnings, fmt.Sprintf("status references unknown requirement %q", id))
	}
	return warnings
}

// notApplicable builds the well-defined gated-off record for a
// framework.
func notApplicable(framework, reason string) FrameworkResult {
	return FrameworkResult{
		Framework:    framework,
		Applies:      false,
		Reason:       reason,
		Requirements: []RequirementDefinition{},
		Score:        ScoreBreakdown{Categories: []CategoryScore{}},
		Risk:         RiskLow,
		Gaps:         []GapRecord{},
	}
}

// Aggregate runs the full per-framework pipeline for one profile and
// merges everything into a single consolidated result. Statuses are a
// single snapshot keyed by requirement id; ids are unique across all
// catalogs.
func Aggregate(p *OperatorProfile, set CatalogSet, statuses StatusMap) (UnifiedResult, error) {
	if err := validateForGates(p); err != nil {
		return UnifiedResult{}, err
	}
	if statuses == nil {
		statuses = StatusMap{}
	}

	var res UnifiedResult

	// EU-style act.
	if ok, reason := euGate(p); ok {
		res.EUSpaceAct = runPipeline(p, set.EUSpaceAct, statuses, set.CrossReferences, p.EstablishmentCountry)
		res.EUSpaceAct.Regime = euRegime(p)
		if res.EUSpaceAct.Regime == RegimeLight {
			res.EUSpaceAct.TimelineMonths = euBaseMonthsLight
		} else {
			res.EUSpaceAct.TimelineMonths = euBaseMonthsStandard
		}
	} else {
		res.EUSpaceAct = notApplicable(FrameworkEUSpaceAct, reason)
	}

	// NIS2-style directive.
	if ok, reason := nis2Gate(p); ok {
		overlay := postureStatuses(p, set.NIS2, statuses)
		res.NIS2 = runPipeline(p, set.NIS2, overlay, nil, "")
		res.NIS2.Regime = nis2Class(p)
		res.NIS2.ComplianceGapCount, res.NIS2.EstimatedReadiness = postureSummary(p)
		if res.NIS2.Regime == ClassEssential {
			res.NIS2.TimelineMonths = nis2MonthsEssential
		} else {
			res.NIS2.TimelineMonths = nis2MonthsImportant
		}
	} else {
		res.NIS2 = notApplicable(FrameworkNIS2, reason)
	}

	// National comparison runs only with candidate jurisdictions.
	if len(p.Jurisdictions) > 0 {
		res.Rankings = RankJurisdictions(p.Jurisdictions, p.Preferences, set.Jurisdictions)
		for _, code := range p.Jurisdictions {
			nat, ok := set.National[code]
			if !ok {
				continue
			}
			natRes := runPipeline(p, nat, statuses, set.CrossReferences, code)
			natRes.TimelineMonths = nationalMonths(code, set.Jurisdictions)
			res.National = append(res.National, natRes)
		}
	}

	res.TotalRequirements = len(res.EUSpaceAct.Requirements) + len(res.NIS2.Requirements)
	for _, n := range res.National {
		res.TotalRequirements += len(n.Requirements)
	}
	res.OverallRisk = overallRisk(res)
	res.TimelineMonths = totalTimeline(res)
	res.PriorityActions = priorityActions(res)
	res.Warnings = orphanWarnings(set, statuses)
	return res, nil
}

// postureSummary counts failed posture answers and the readiness
// fraction across the ten posture questions.
func postureSummary(p *OperatorProfile) (gaps int, readiness float64) {
	met := 0
	for _, key := range PostureKeys {
		answer, _ := p.Posture.Answer(key)
		if answer {
			met++
		} else {
			gaps++
		}
	}
	return gaps, float64(met) / float64(len(PostureKeys))
}

func nationalMonths(code string, table []JurisdictionInfo) int {
	for _, j := range table {
		if j.Code == code {
			if m, ok := nationalMonthsByProcessing[j.ProcessingTime]; ok {
				return m
			}
		}
	}
	return nationalMonthsByProcessing[LevelMedium]
}

// overallRisk is the maximum risk across applicable frameworks, with
// one override: a standard-regime act obligation combined with an
// essential NIS2 classification is at least high even when neither
// crosses that line alone.
func overallRisk(res UnifiedResult) RiskLevel {
	risk := RiskLow
	if res.EUSpaceAct.Applies {
		risk = MaxRisk(risk, res.EUSpaceAct.Risk)
	}
	if res.NIS2.Applies {
		risk = MaxRisk(risk, res.NIS2.Risk)
	}
	for _, n := range res.National {
		if n.Applies {
			risk = MaxRisk(risk, n.Risk)
		}
	}
	if res.EUSpaceAct.Applies && res.EUSpaceAct.Regime == RegimeStandard &&
		res.NIS2.Applies && res.NIS2.Regime == ClassEssential {
		risk = MaxRisk(risk, RiskHigh)
	}
	return risk
}

func totalTimeline(res UnifiedResult) int {
	months := res.EUSpaceAct.TimelineMonths + res.NIS2.TimelineMonths
	for _, n := range res.National {
		months += n.TimelineMonths
	}
	if months > timelineCapMonths {
		months = timelineCapMonths
	}
	return months
}

// priorityActions consolidates the highest-priority gaps across all
// frameworks into actionable strings, ordered by priority then by
// framework pipeline order.
func priorityActions(res UnifiedResult) []string {
	type action struct {
		prio Priority
		text string
	}
	var all []action
	collect := func(fr FrameworkResult) {
		if !fr.Applies {
			return
		}
		for _, g := range fr.Gaps {
			all = append(all, action{
				prio: g.Priority,
				text: fmt.Sprintf("[%s] %s (%s)", fr.Framework, g.Title, g.Article),
			})
		}
	}
	collect(res.EUSpaceAct)
	collect(res.NIS2)
	for _, n := range res.National {
		collect(n)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return priorityOrdinal(all[i].prio) > priorityOrdinal(all[j].prio)
	})
	const maxActions = 10
	out := make([]string, 0, maxActions)
	for _, a := range all {
		if len(out) == maxActions {
			break
		}
		out = append(out, a.text)
	}
	return out
}
