package catalogs

import "kepler/internal/engine"

// Jurisdictions returns the static jurisdiction data table used by the
// ranker. Values reflect published processing statistics and regime
// characteristics; they are a documented default configuration.
func Jurisdictions() []engine.JurisdictionInfo {
	return []engine.JurisdictionInfo{
		{
			Code: "LU", Name: "Luxembourg",
			ProcessingTime:   engine.LevelLow,
			EnglishTrack:     true,
			NewSpaceFriendly: true,
			InsuranceMinimum: engine.LevelLow,
			Complexity:       engine.LevelLow,
			EUAlignment:      engine.LevelHigh,
		},
		{
			Code: "NL", Name: "Netherlands",
			ProcessingTime:   engine.LevelMedium,
			EnglishTrack:     true,
			NewSpaceFriendly: true,
			InsuranceMinimum: engine.LevelMedium,
			Complexity:       engine.LevelMedium,
			EUAlignment:      engine.LevelHigh,
		},
		{
			Code: "DE", Name: "Germany",
			ProcessingTime:   engine.LevelHigh,
			EnglishTrack:     false,
			NewSpaceFriendly: false,
			InsuranceMinimum: engine.LevelHigh,
			Complexity:       engine.LevelHigh,
			EUAlignment:      engine.LevelHigh,
		},
		{
			Code: "FR", Name: "France",
			ProcessingTime:   engine.LevelHigh,
			EnglishTrack:     false,
			NewSpaceFriendly: false,
			InsuranceMinimum: engine.LevelHigh,
			Complexity:       engine.LevelHigh,
			EUAlignment:      engine.LevelHigh,
		},
		{
			Code: "AT", Name: "Austria",
			ProcessingTime:   engine.LevelMedium,
			EnglishTrack:     false,
			NewSpaceFriendly: false,
			InsuranceMinimum: engine.LevelHigh,
			Complexity:       engine.LevelMedium,
			EUAlignment:      engine.LevelMedium,
		},
		{
			Code: "BE", Name: "Belgium",
			ProcessingTime:   engine.LevelMedium,
			EnglishTrack:     true,
			NewSpaceFriendly: false,
			InsuranceMinimum: engine.LevelMedium,
			Complexity:       engine.LevelMedium,
			EUAlignment:      engine.LevelMedium,
		},
		{
			Code: "PT", Name: "Portugal",
			ProcessingTime:   engine.LevelLow,
			EnglishTrack:     true,
			NewSpaceFriendly: true,
			InsuranceMinimum: engine.LevelLow,
			Complexity:       engine.LevelLow,
			EUAlignment:      engine.LevelMedium,
		},
		{
			Code: "US", Name: "United States",
			ProcessingTime:   engine.LevelMedium,
			EnglishTrack:     true,
			NewSpaceFriendly: true,
			InsuranceMinimum: engine.LevelMedium,
			Complexity:       engine.LevelHigh,
			EUAlignment:      engine.LevelLow,
		},
	}
}
