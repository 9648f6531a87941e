package usecase

import (
	"fmt"

	"placement-engine/internal/domain/matching"
)

// Overrides are per-request adjustments on top of the configured engine
// settings. Nil fields keep the configured value.
type Overrides struct {
	MinSimilarity *float64
	MinFitScore   *int
	TopN          *int
}

type topNTarget int

const (
	topNPeers topNTarget = iota
	topNSimilar
	topNJobs
	topNCandidates
)

func (o Overrides) apply(base matching.Config, target topNTarget) (matching.Config, error) {
	cfg := base
	cfg.QualityTiers = append([]matching.QualityTier(nil), base.QualityTiers...)

	if o.MinSimilarity != nil {
		cfg.MinSimilarity = *o.MinSimilarity
	}
	if o.MinFitScore != nil {
		cfg.MinFitScore = *o.MinFitScore
	}
	if o.TopN != nil {
		switch target {
		case topNPeers:
			cfg.TopPeers = *o.TopN
		case topNSimilar:
			cfg.TopSimilar = *o.TopN
			if cfg.TopPeers < cfg.TopSimilar {
				cfg.TopPeers = cfg.TopSimilar
			}
		case topNJobs:
			cfg.TopJobs = *o.TopN
		case topNCandidates:
			cfg.TopCandidates = *o.TopN
		}
	}

	if err := cfg.Validate(); err != nil {
		return matching.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Engine is the configured engine setup shared by every usecase.
type Engine struct {
	Config      matching.Config
	MatcherName string
}
