package engine

import "sort"

// Level is a coarse low/medium/high bucket used by the jurisdiction
// data table for processing time, insurance minimums, and complexity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// JurisdictionInfo is a static data-table entry describing one national
// licensing regime.
type JurisdictionInfo struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	ProcessingTime   Level   `json:"processing_time"`
	EnglishTrack     bool   `json:"english_track"`
	NewSpaceFriendly bool   `json:"new_space_friendly"`
	InsuranceMinimum Level   `json:"insurance_minimum"`
	Complexity       Level   `json:"complexity"`
	EUAlignment      Level   `json:"eu_alignment"`
}

// JurisdictionScore is a computed ranking entry. Never persisted.
type JurisdictionScore struct {
	Code  string   `json:"code"`
	Name  string   `json:"name"`
	Score int      `json:"score"`
	Pros  []string `json:"pros,omitempty"`
	Cons  []string `json:"cons,omitempty"`
}

// Ranking parameters. Base score and adjustment magnitudes are the
// documented default configuration; the pros/cons lists are capped and
// only carry reasons that actually fired.
const (
	rankBase = 50

	maxPros = 3
	maxCons = 2
)

// RankJurisdictions scores each candidate against the preferences using
// the static jurisdiction table and returns them ordered best-first.
// Candidates missing from the table are skipped. The sort is stable:
// candidates with equal scores keep their input order.
func RankJurisdictions(candidates []string, prefs Preferences, table []JurisdictionInfo) []JurisdictionScore {
	byCode := make(map[string]JurisdictionInfo, len(table))
	for _, j := range table {
		byCode[j.Code] = j
	}
	out := make([]JurisdictionScore, 0, len(candidates))
	for _, code := range candidates {
		j, ok := byCode[code]
		if !ok {
			continue
		}
		out = append(out, scoreJurisdiction(j, prefs))
	}
	sort.SliceStable(out, func(i, k int) bool { return out[i].Score > out[k].Score })
	return out
}

func scoreJurisdiction(j JurisdictionInfo, prefs Preferences) JurisdictionScore {
	score := rankBase
	var pros, cons []string

	if prefs.FastProcessing {
		switch j.ProcessingTime {
		case LevelLow:
			score += 15
			pros = append(pros, "fast authorization processing")
		case LevelHigh:
			score -= 10
			cons = append(cons, "slow authorization processing")
		}
	}
	if prefs.EnglishRequired {
		if j.EnglishTrack {
			score += 20
			pros = append(pros, "English-language application track")
		} else {
			score -= 25
			cons = append(cons, "no English-language application track")
		}
	}
	if prefs.Startup && j.NewSpaceFriendly {
		score += 15
		pros = append(pros, "new-space friendly regime")
	}
	switch j.InsuranceMinimum {
	case LevelLow:
		score += 10
		pros = append(pros, "low insurance minimum")
	case LevelHigh:
		if !prefs.InsuranceCoverage {
			score -= 10
			cons = append(cons, "high insurance minimum")
		}
	}
	switch j.Complexity {
	case LevelLow:
		score += 10
		pros = append(pros, "low regulatory complexity")
	case LevelHigh:
		score -= 10
		cons = append(cons, "high regulatory complexity")
	}
	if j.EUAlignment == LevelHigh {
		score += 8
		pros = append(pros, "strong EU framework alignment")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if len(pros) > maxPros {
		pros = pros[:maxPros]
	}
	if len(cons) > maxCons {
		cons = cons[:maxCons]
	}
	return JurisdictionScore{Code: j.Code, Name: j.Name, Score: score, Pros: pros, Cons: cons}
}
