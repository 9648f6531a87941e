package matching

import (
	"fmt"
	"math"
)

const (
	skillWeight      = 50.0
	preferenceWeight = 30.0
	maxQualityBonus  = 20.0
	maxFitScore      = 100
)

// QualityTier awards Bonus when the actor's GPA is at least Threshold.
type QualityTier struct {
	Threshold float64 `koanf:"threshold" yaml:"threshold" json:"threshold"`
	Bonus     float64 `koanf:"bonus" yaml:"bonus" json:"bonus"`
}

// Config is the explicit options object every engine entry point takes.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	MinSimilarity         float64       `koanf:"min_similarity" json:"min_similarity"`
	MinFitScore           int           `koanf:"min_fit_score" json:"min_fit_score"`
	TopPeers              int           `koanf:"top_peers" json:"top_peers"`
	TopSimilar            int           `koanf:"top_similar" json:"top_similar"`
	TopPaths              int           `koanf:"top_paths" json:"top_paths"`
	TopJobs               int           `koanf:"top_jobs" json:"top_jobs"`
	TopCandidates         int           `koanf:"top_candidates" json:"top_candidates"`
	MaxLearningPathSkills int           `koanf:"max_learning_path_skills" json:"max_learning_path_skills"`
	MaxPoolSize           int           `koanf:"max_pool_size" json:"max_pool_size"`
	MaxTransitions        int           `koanf:"max_transitions" json:"max_transitions"`
	MaxSkillEdges         int           `koanf:"max_skill_edges" json:"max_skill_edges"`
	DefaultTimelineMonths int           `koanf:"default_timeline_months" json:"default_timeline_months"`
	DefaultConfidence     int           `koanf:"default_confidence" json:"default_confidence"`
	QualityTiers          []QualityTier `koanf:"quality_tiers" json:"quality_tiers"`

	// Matcher defaults to ContainmentMatch when nil.
	Matcher SkillMatcher `koanf:"-" json:"-"`
}

func DefaultConfig() Config {
	return Config{
		MinSimilarity:         0.25,
		MinFitScore:           40,
		TopPeers:              10,
		TopSimilar:            5,
		TopPaths:              5,
		TopJobs:               3,
		TopCandidates:         10,
		MaxLearningPathSkills: 10,
		MaxPoolSize:           100,
		MaxTransitions:        20,
		MaxSkillEdges:         50,
		DefaultTimelineMonths: 12,
		DefaultConfidence:     50,
		QualityTiers: []QualityTier{
			{Threshold: 8.5, Bonus: 20},
			{Threshold: 7.5, Bonus: 15},
			{Threshold: 6.5, Bonus: 10},
		},
	}
}

// Validate rejects out-of-range and non-finite settings with ErrInvalidConfig.
func (c Config) Validate() error {
	if !finite(c.MinSimilarity) || c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return fmt.Errorf("%w: min_similarity must be within [0,1], got %v", ErrInvalidConfig, c.MinSimilarity)
	}
	if c.MinFitScore < 0 || c.MinFitScore > maxFitScore {
		return fmt.Errorf("%w: min_fit_score must be within [0,100], got %d", ErrInvalidConfig, c.MinFitScore)
	}

	limits := []struct {
		name string
		v    int
	}{
		{"top_peers", c.TopPeers},
		{"top_similar", c.TopSimilar},
		{"top_paths", c.TopPaths},
		{"top_jobs", c.TopJobs},
		{"top_candidates", c.TopCandidates},
		{"max_learning_path_skills", c.MaxLearningPathSkills},
		{"max_pool_size", c.MaxPoolSize},
		{"max_transitions", c.MaxTransitions},
		{"max_skill_edges", c.MaxSkillEdges},
	}
	for _, l := range limits {
		if l.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, l.name, l.v)
		}
	}

	if c.DefaultTimelineMonths < 0 {
		return fmt.Errorf("%w: default_timeline_months must not be negative", ErrInvalidConfig)
	}
	if c.DefaultConfidence < 0 || c.DefaultConfidence > 100 {
		return fmt.Errorf("%w: default_confidence must be within [0,100]", ErrInvalidConfig)
	}

	for i, t := range c.QualityTiers {
		if !finite(t.Threshold) {
			return fmt.Errorf("%w: quality_tiers[%d].threshold must be finite, got %v", ErrInvalidConfig, i, t.Threshold)
		}
		if !finite(t.Bonus) || t.Bonus < 0 || t.Bonus > maxQualityBonus {
			return fmt.Errorf("%w: quality_tiers[%d].bonus must be within [0,20]", ErrInvalidConfig, i)
		}
		if i > 0 && t.Threshold >= c.QualityTiers[i-1].Threshold {
			return fmt.Errorf("%w: quality_tiers must be ordered by descending threshold", ErrInvalidConfig)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) matcher() SkillMatcher {
	if c.Matcher == nil {
		return ContainmentMatch
	}
	return c.Matcher
}

func (c Config) qualityBonus(gpa float64) float64 {
	for _, t := range c.QualityTiers {
		if gpa >= t.Threshold {
			return t.Bonus
		}
	}
	return 0
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
