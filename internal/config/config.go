package config

import (
	"errors"
	"strings"
	"time"

	"placement-engine/internal/domain/matching"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Cache    CacheConfig    `koanf:"cache"`
	Matching MatchingConfig `koanf:"matching"`
}

type AppConfig struct {
	AppName     string `koanf:"name"`
	Environment string `koanf:"env"`
	HTTPPort    string `koanf:"http_port"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type DatabaseConfig struct {
	DBHost     string `koanf:"host"`
	DBPort     string `koanf:"port"`
	DBName     string `koanf:"name"`
	DBUser     string `koanf:"user"`
	DBPassword string `koanf:"password"`
	DBSSLMode  string `koanf:"ssl_mode"`

	ConnectTimeout        time.Duration `koanf:"connect_timeout"`
	PoolMaxConns          int32         `koanf:"pool_max_conns"`
	PoolMinConns          int32         `koanf:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `koanf:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `koanf:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `koanf:"pool_health_check_period"`

	RunMigrations bool   `koanf:"run_migrations"`
	MigrationsDir string `koanf:"migrations_dir"`
	RunSeeders    bool   `koanf:"run_seeders"`
}

// Enabled reports whether enough connection settings are present to dial.
func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.DBHost) != "" && strings.TrimSpace(d.DBName) != ""
}

type RedisConfig struct {
	Host     string        `koanf:"host"`
	Port     string        `koanf:"port"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

type CacheConfig struct {
	Enabled   bool          `koanf:"enabled"`
	L1Size    int           `koanf:"l1_size"`
	L1TTL     time.Duration `koanf:"l1_ttl"`
	KeyPrefix string        `koanf:"key_prefix"`
}

// MatchingConfig is the engine configuration plus the name of the skill
// matcher, which cannot be expressed as data directly.
type MatchingConfig struct {
	matching.Config `koanf:",squash"`
	SkillMatcher    string `koanf:"skill_matcher"`
}

// Engine resolves SkillMatcher and returns the value handed to the engine.
func (m MatchingConfig) Engine() (matching.Config, error) {
	cfg := m.Config
	switch strings.ToLower(strings.TrimSpace(m.SkillMatcher)) {
	case "", "containment":
		cfg.Matcher = matching.ContainmentMatch
	case "exact":
		cfg.Matcher = matching.ExactMatch
	case "alias":
		cfg.Matcher = matching.AliasMatcher(matching.DefaultAliases)
	default:
		return matching.Config{}, errors.New("unknown skill matcher: " + m.SkillMatcher)
	}
	return cfg, nil
}

// Defaults is the bottom configuration layer.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Database: DatabaseConfig{
			DBPort:         "5432",
			DBSSLMode:      "disable",
			ConnectTimeout: 5 * time.Second,
			PoolMaxConns:   10,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
			TTL:  600 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:   true,
			L1Size:    1024,
			L1TTL:     30 * time.Second,
			KeyPrefix: "placement",
		},
		Matching: MatchingConfig{Config: matching.DefaultConfig(), SkillMatcher: "containment"},
	}
}
