package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"placement-engine/internal/config"
	"placement-engine/internal/database"
	"placement-engine/internal/database/migration"
	dbpostgres "placement-engine/internal/database/postgres"
	"placement-engine/internal/database/seeder"
	"placement-engine/internal/delivery/http/handler"
	"placement-engine/internal/infrastructure/cache"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"
	"placement-engine/internal/repository"
	"placement-engine/internal/usecase"
	"placement-engine/migrations"
)

var errDatabaseNotConfigured = errors.New("database is not configured (DB_HOST, DB_NAME)")

type Container struct {
	Config  config.Config
	Logger  logger.Logger
	Metrics *metrics.Manager
	DB      database.DB
	Redis   *cache.Redis

	Recommendations *usecase.Recommendation
	Peers           *usecase.Peers
	JobFit          *usecase.JobFit
}

func NewContainer(ctx context.Context, cfg config.Config, log logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}
	if !cfg.Database.Enabled() {
		return nil, errDatabaseNotConfigured
	}

	engineCfg, err := cfg.Matching.Engine()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	engine := usecase.Engine{Config: engineCfg, MatcherName: cfg.Matching.SkillMatcher}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log.Named("postgres"))
	if err != nil {
		return nil, err
	}
	c := &Container{Config: cfg, Logger: log, Metrics: metrics.NewManager(), DB: db}

	if err := c.prepareSchema(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	var bundleCache usecase.BundleCache
	if cfg.Cache.Enabled {
		c.Redis = cache.NewRedis(ctx, cfg.Redis, log.Named("redis"))
		bundleCache = cache.NewTiered(cache.NewLocal(cfg.Cache.L1Size, cfg.Cache.L1TTL), c.Redis, log.Named("cache"))
	}

	students := repository.NewPostgresStudentRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	careers := repository.NewPostgresCareerRepository(db)

	c.Recommendations = usecase.NewRecommendationUsecase(students, careers, engine, bundleCache, cfg.Cache.KeyPrefix, cfg.Redis.TTL, c.Metrics, log)
	c.Peers = usecase.NewPeerUsecase(students, engine, c.Metrics, log)
	c.JobFit = usecase.NewJobFitUsecase(students, jobs, engine, c.Metrics, log)
	return c, nil
}

func (c *Container) prepareSchema(ctx context.Context) error {
	dbCfg := c.Config.Database
	if dbCfg.RunMigrations {
		runner := migration.Runner{FS: migrations.FS, Logger: c.Logger.Named("migration")}
		if dir := strings.TrimSpace(dbCfg.MigrationsDir); dir != "" {
			runner.FS = os.DirFS(dir)
		}
		applied, err := runner.Run(ctx, c.DB.SQLDB())
		if err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		c.Logger.Info(ctx, "migrations applied", logger.Int("count", applied))
	}
	if dbCfg.RunSeeders {
		runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger.Named("seeder")}
		if err := runner.Run(ctx, c.DB); err != nil {
			return fmt.Errorf("run seeders: %w", err)
		}
	}
	return nil
}

// HealthChecks lists the dependencies reported by /health.
func (c *Container) HealthChecks() map[string]handler.Pinger {
	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["database"] = c.DB
	}
	if c.Redis != nil && c.Redis.Available() {
		checks["redis"] = c.Redis
	}
	return checks
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
