package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"placement-engine/internal/config"
	"placement-engine/internal/domain/matching"

	. "github.com/smartystreets/goconvey/convey"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_NAME", "placement-engine")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func writeConfigFile(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given only the required environment", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")

		cfg, err := config.Load(ctx)

		Convey("Then defaults fill everything else", func() {
			So(err, ShouldBeNil)
			So(cfg.App.HTTPPort, ShouldEqual, "8080")
			So(cfg.Log.Level, ShouldEqual, "info")
			So(cfg.Redis.TTL, ShouldEqual, 600*time.Second)
			So(cfg.Cache.L1Size, ShouldEqual, 1024)
			So(cfg.Matching.MinSimilarity, ShouldEqual, 0.25)
			So(cfg.Matching.MinFitScore, ShouldEqual, 40)
			So(cfg.Matching.QualityTiers, ShouldHaveLength, 3)
			So(cfg.Database.Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given environment overrides", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_NAME", "placement")
		t.Setenv("DB_POOL_MAX_CONNS", "25")
		t.Setenv("DB_CONNECT_TIMEOUT", "3s")
		t.Setenv("REDIS_TTL", "120")
		t.Setenv("CACHE_ENABLED", "false")
		t.Setenv("MATCH_MIN_SIMILARITY", "0.4")
		t.Setenv("MATCH_TOP_PEERS", "7")
		t.Setenv("MATCH_SKILL_MATCHER", "alias")

		cfg, err := config.Load(ctx)

		Convey("Then they win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Database.Enabled(), ShouldBeTrue)
			So(cfg.Database.PoolMaxConns, ShouldEqual, int32(25))
			So(cfg.Database.ConnectTimeout, ShouldEqual, 3*time.Second)
			So(cfg.Redis.TTL, ShouldEqual, 120*time.Second)
			So(cfg.Cache.Enabled, ShouldBeFalse)
			So(cfg.Matching.MinSimilarity, ShouldEqual, 0.4)
			So(cfg.Matching.TopPeers, ShouldEqual, 7)
			So(cfg.Matching.TopJobs, ShouldEqual, 3)

			engine, err := cfg.Matching.Engine()
			So(err, ShouldBeNil)
			So(engine.Matcher("js", "javascript"), ShouldBeTrue)
		})
	})

	Convey("Given a YAML file", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, writeConfigFile(t, `
app:
  http_port: "9000"
matching:
  min_fit_score: 55
  quality_tiers:
    - threshold: 3.5
      bonus: 20
    - threshold: 3.0
      bonus: 10
`))

		cfg, err := config.Load(ctx)

		Convey("Then the file sits between defaults and env", func() {
			So(err, ShouldBeNil)
			So(cfg.App.HTTPPort, ShouldEqual, "8080")
			So(cfg.Matching.MinFitScore, ShouldEqual, 55)
			So(cfg.Matching.QualityTiers, ShouldResemble, []matching.QualityTier{
				{Threshold: 3.5, Bonus: 20},
				{Threshold: 3.0, Bonus: 10},
			})
		})
	})

	Convey("Given a missing required variable", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("HTTP_PORT", "")

		_, err := config.Load(ctx)

		Convey("Then Load names it", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "HTTP_PORT")
		})
	})

	Convey("Given an out-of-range engine setting", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("MATCH_MIN_SIMILARITY", "1.5")

		_, err := config.Load(ctx)

		Convey("Then it is a configuration error", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			So(errors.Is(err, matching.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given an unknown skill matcher", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("MATCH_SKILL_MATCHER", "fuzzy")

		_, err := config.Load(ctx)

		Convey("Then Load rejects it", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given a non-finite engine threshold", t, func() {
		setRequired(t)
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("MATCH_MIN_SIMILARITY", "NaN")

		_, err := config.Load(ctx)

		Convey("Then it is a configuration error", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given a cancelled context", t, func() {
		setRequired(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := config.Load(cctx)

		Convey("Then Load stops before reading any source", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
