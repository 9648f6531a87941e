package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the optional YAML file layered over the defaults.
const ConfigFileEnv = "PLACEMENT_CONFIG"

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	// ErrInvalidConfig wraps every validation failure returned by Load.
	ErrInvalidConfig = errors.New("invalid config")
)

// envKeys maps flat environment variables onto koanf paths.
var envKeys = map[string]string{
	"APP_NAME":  "app.name",
	"APP_ENV":   "app.env",
	"HTTP_PORT": "app.http_port",

	"LOG_LEVEL":  "log.level",
	"LOG_FORMAT": "log.format",

	"DB_HOST":                     "database.host",
	"DB_PORT":                     "database.port",
	"DB_NAME":                     "database.name",
	"DB_USER":                     "database.user",
	"DB_PASSWORD":                 "database.password",
	"DB_SSL_MODE":                 "database.ssl_mode",
	"DB_CONNECT_TIMEOUT":          "database.connect_timeout",
	"DB_POOL_MAX_CONNS":           "database.pool_max_conns",
	"DB_POOL_MIN_CONNS":           "database.pool_min_conns",
	"DB_POOL_MAX_CONN_LIFETIME":   "database.pool_max_conn_lifetime",
	"DB_POOL_MAX_CONN_IDLE_TIME":  "database.pool_max_conn_idle_time",
	"DB_POOL_HEALTH_CHECK_PERIOD": "database.pool_health_check_period",
	"DB_RUN_MIGRATIONS":           "database.run_migrations",
	"DB_MIGRATIONS_DIR":           "database.migrations_dir",
	"DB_RUN_SEEDERS":              "database.run_seeders",

	"REDIS_HOST":     "redis.host",
	"REDIS_PORT":     "redis.port",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",
	"REDIS_TTL":      "redis.ttl",

	"CACHE_ENABLED":    "cache.enabled",
	"CACHE_L1_SIZE":    "cache.l1_size",
	"CACHE_L1_TTL":     "cache.l1_ttl",
	"CACHE_KEY_PREFIX": "cache.key_prefix",
}

const matchEnvPrefix = "MATCH_"

// Load builds a Config by layering, low to high precedence:
//  1. Defaults()
//  2. YAML file named by PLACEMENT_CONFIG, if set
//  3. environment variables (see envKeys; MATCH_<FIELD> for the engine)
//
// A cancelled ctx aborts before any source is read.
func Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	// A configured tier list replaces the defaults instead of merging into them.
	if k.Exists("matching.quality_tiers") {
		cfg.Matching.QualityTiers = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envTransform returns an empty key for variables that are not ours so
// koanf drops them.
func envTransform(key, value string) (string, any) {
	value = strings.TrimSpace(value)
	if path, ok := envKeys[key]; ok {
		if key == "REDIS_TTL" {
			value = secondsToDuration(value)
		}
		return path, value
	}
	if strings.HasPrefix(key, matchEnvPrefix) {
		field := strings.ToLower(strings.TrimPrefix(key, matchEnvPrefix))
		if field == "" {
			return "", nil
		}
		return "matching." + field, value
	}
	return "", nil
}

// secondsToDuration keeps REDIS_TTL accepting a bare number of seconds.
func secondsToDuration(v string) string {
	if n, err := strconv.Atoi(v); err == nil {
		return strconv.Itoa(n) + "s"
	}
	return v
}

// Validate checks required settings and the engine configuration.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.App.AppName) == "" {
		missing = append(missing, "APP_NAME")
	}
	if strings.TrimSpace(c.App.Environment) == "" {
		missing = append(missing, "APP_ENV")
	}
	if strings.TrimSpace(c.App.HTTPPort) == "" {
		missing = append(missing, "HTTP_PORT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if c.Cache.Enabled && c.Cache.L1Size <= 0 {
		return fmt.Errorf("%w: cache.l1_size must be positive", ErrInvalidConfig)
	}
	if _, err := c.Matching.Engine(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Matching.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
