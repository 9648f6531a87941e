package matching

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no tiers", func(c *Config) { c.QualityTiers = nil }, true},
		{"similarity above one", func(c *Config) { c.MinSimilarity = 1.5 }, false},
		{"similarity NaN", func(c *Config) { c.MinSimilarity = math.NaN() }, false},
		{"similarity +Inf", func(c *Config) { c.MinSimilarity = math.Inf(1) }, false},
		{"negative fit score", func(c *Config) { c.MinFitScore = -1 }, false},
		{"zero top peers", func(c *Config) { c.TopPeers = 0 }, false},
		{"negative top jobs", func(c *Config) { c.TopJobs = -3 }, false},
		{"confidence above 100", func(c *Config) { c.DefaultConfidence = 101 }, false},
		{"tier threshold NaN", func(c *Config) { c.QualityTiers[1].Threshold = math.NaN() }, false},
		{"leading tier threshold +Inf", func(c *Config) { c.QualityTiers[0].Threshold = math.Inf(1) }, false},
		{"last tier threshold -Inf", func(c *Config) { c.QualityTiers[2].Threshold = math.Inf(-1) }, false},
		{"tier bonus NaN", func(c *Config) { c.QualityTiers[0].Bonus = math.NaN() }, false},
		{"tier bonus above cap", func(c *Config) { c.QualityTiers[0].Bonus = 25 }, false},
		{"tiers ascending", func(c *Config) { c.QualityTiers[1].Threshold = 9 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
