package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neutral is a jurisdiction that triggers no adjustment for empty
// preferences: every tiered attribute sits at medium, no flags set.
func neutral(code string) JurisdictionInfo {
	return JurisdictionInfo{
		Code: code, Name: code,
		ProcessingTime:   LevelMedium,
		InsuranceMinimum: LevelMedium,
		Complexity:       LevelMedium,
		EUAlignment:      LevelMedium,
	}
}

func TestRankJurisdictions_StableAtEqualScores(t *testing.T) {
	// Both candidates score exactly the base 50 with no adjustments
	// firing; the output order must equal the input order.
	table := []JurisdictionInfo{neutral("AA"), neutral("BB")}

	got := RankJurisdictions([]string{"BB", "AA"}, Preferences{}, table)
	require.Len(t, got, 2)
	assert.Equal(t, 50, got[0].Score)
	assert.Equal(t, 50, got[1].Score)
	assert.Equal(t, "BB", got[0].Code)
	assert.Equal(t, "AA", got[1].Code)
	assert.Empty(t, got[0].Pros)
	assert.Empty(t, got[0].Cons)
}

func TestRankJurisdictions_FastProcessingPreference(t *testing.T) {
	fast := neutral("FA")
	fast.ProcessingTime = LevelLow
	slow := neutral("SL")
	slow.ProcessingTime = LevelHigh

	got := RankJurisdictions([]string{"SL", "FA"}, Preferences{FastProcessing: true}, []JurisdictionInfo{fast, slow})
	require.Len(t, got, 2)
	assert.Equal(t, "FA", got[0].Code)
	assert.Equal(t, 65, got[0].Score)
	assert.Equal(t, 40, got[1].Score)
	assert.Contains(t, got[0].Pros, "fast authorization processing")
	assert.Contains(t, got[1].Cons, "slow authorization processing")
}

func TestRankJurisdictions_EnglishRequirement(t *testing.T) {
	en := neutral("EN")
	en.EnglishTrack = true
	de := neutral("XX")

	got := RankJurisdictions([]string{"XX", "EN"}, Preferences{EnglishRequired: true}, []JurisdictionInfo{en, de})
	require.Len(t, got, 2)
	assert.Equal(t, "EN", got[0].Code)
	assert.Equal(t, 70, got[0].Score)
	assert.Equal(t, 25, got[1].Score)
}

func TestRankJurisdictions_StartupFlag(t *testing.T) {
	friendly := neutral("NS")
	friendly.NewSpaceFriendly = true

	got := RankJurisdictions([]string{"NS"}, Preferences{Startup: true}, []JurisdictionInfo{friendly})
	require.Len(t, got, 1)
	assert.Equal(t, 65, got[0].Score)
	assert.Contains(t, got[0].Pros, "new-space friendly regime")
}

func TestRankJurisdictions_InsuranceCoverageSoftensHighMinimum(t *testing.T) {
	j := neutral("HI")
	j.InsuranceMinimum = LevelHigh

	without := RankJurisdictions([]string{"HI"}, Preferences{}, []JurisdictionInfo{j})
	withCover := RankJurisdictions([]string{"HI"}, Preferences{InsuranceCoverage: true}, []JurisdictionInfo{j})
	require.Len(t, without, 1)
	require.Len(t, withCover, 1)
	assert.Equal(t, 40, without[0].Score)
	assert.Equal(t, 50, withCover[0].Score)
}

func TestRankJurisdictions_ClampedToRange(t *testing.T) {
	best := JurisdictionInfo{
		Code: "MX", Name: "Best",
		ProcessingTime:   LevelLow,
		EnglishTrack:     true,
		NewSpaceFriendly: true,
		InsuranceMinimum: LevelLow,
		Complexity:       LevelLow,
		EUAlignment:      LevelHigh,
	}
	prefs := Preferences{FastProcessing: true, EnglishRequired: true, Startup: true}
	got := RankJurisdictions([]string{"MX"}, prefs, []JurisdictionInfo{best})
	require.Len(t, got, 1)
	// 50+15+20+15+10+10+8 = 128 → clamped.
	assert.Equal(t, 100, got[0].Score)
	// Pros are capped at three even though six reasons fired.
	assert.Len(t, got[0].Pros, 3)
}

func TestRankJurisdictions_UnknownCandidateSkipped(t *testing.T) {
	got := RankJurisdictions([]string{"ZZ", "AA"}, Preferences{}, []JurisdictionInfo{neutral("AA")})
	require.Len(t, got, 1)
	assert.Equal(t, "AA", got[0].Code)
}

func TestRankJurisdictions_ConsCapped(t *testing.T) {
	worst := JurisdictionInfo{
		Code: "WX", Name: "Worst",
		ProcessingTime:   LevelHigh,
		InsuranceMinimum: LevelHigh,
		Complexity:       LevelHigh,
		EUAlignment:      LevelLow,
	}
	prefs := Preferences{FastProcessing: true, EnglishRequired: true}
	got := RankJurisdictions([]string{"WX"}, prefs, []JurisdictionInfo{worst})
	require.Len(t, got, 1)
	// Four negative reasons fired; the cons list is capped at two.
	assert.Len(t, got[0].Cons, 2)
	// 50-10-25-10-10 = -5 → clamped to 0.
	assert.Equal(t, 0, got[0].Score)
}
