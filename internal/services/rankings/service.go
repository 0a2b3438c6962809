// Package rankings exposes jurisdiction comparison over the static
// jurisdiction knowledge base.
package rankings

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kepler/internal/engine"
)

type Service struct {
	table []engine.JurisdictionInfo
	log   *zap.Logger
}

func New(table []engine.JurisdictionInfo, log *zap.Logger) *Service {
	return &Service{table: table, log: log}
}

// Rank scores the candidate jurisdictions against the preferences.
// Candidates without a knowledge-base entry are skipped; an empty
// candidate list is an error since the caller has nothing to compare.
func (s *Service) Rank(_ context.Context, candidates []string, prefs engine.Preferences) ([]engine.JurisdictionScore, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate jurisdictions given")
	}
	ranked := engine.RankJurisdictions(candidates, prefs, s.table)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("no known jurisdictions among %v", candidates)
	}
	s.log.Debug("jurisdictions ranked",
		zap.Strings("candidates", candidates),
		zap.String("top", ranked[0].Code))
	return ranked, nil
}
