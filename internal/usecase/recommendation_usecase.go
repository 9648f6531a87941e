package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement-engine/internal/domain/career"
	"placement-engine/internal/domain/matching"
	"placement-engine/internal/domain/student"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"

	"github.com/google/uuid"
)

type RecommendationUsecase interface {
	GetBundle(ctx context.Context, studentID uuid.UUID, ov Overrides) (matching.Bundle, bool, error)
}

type Recommendation struct {
	students  student.Repository
	careers   career.Repository
	engine    Engine
	cache     BundleCache
	keyPrefix string
	cacheTTL  time.Duration
	metrics   *metrics.Manager
	log       logger.Logger
}

// NewRecommendationUsecase wires the bundle pipeline. cache may be nil.
func NewRecommendationUsecase(students student.Repository, careers career.Repository, engine Engine, cache BundleCache, keyPrefix string, cacheTTL time.Duration, m *metrics.Manager, log logger.Logger) *Recommendation {
	if log == nil {
		log = logger.Nop()
	}
	return &Recommendation{
		students:  students,
		careers:   careers,
		engine:    engine,
		cache:     cache,
		keyPrefix: keyPrefix,
		cacheTTL:  cacheTTL,
		metrics:   m,
		log:       log.Named("recommendation"),
	}
}

// GetBundle returns the recommendation bundle for a student. The boolean
// reports whether it was served from cache.
func (u *Recommendation) GetBundle(ctx context.Context, studentID uuid.UUID, ov Overrides) (matching.Bundle, bool, error) {
	if studentID == uuid.Nil {
		return matching.Bundle{}, false, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}
	cfg, err := ov.apply(u.engine.Config, topNSimilar)
	if err != nil {
		return matching.Bundle{}, false, err
	}

	s, err := u.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return matching.Bundle{}, false, ErrStudentNotFound
		}
		u.log.Error(ctx, "load student failed", logger.String("student_id", studentID.String()), logger.Error(err))
		return matching.Bundle{}, false, ErrInternal
	}

	key := ""
	if u.cache != nil {
		key = u.cacheKey(ctx, studentID, cfg)
		if key != "" {
			var cached matching.Bundle
			hit, err := u.cache.GetJSON(ctx, key, &cached)
			switch {
			case err != nil:
				u.metrics.RecordCache(metrics.CacheError)
				u.log.Warn(ctx, "bundle cache read failed", logger.Error(err))
			case hit:
				u.metrics.RecordCache(metrics.CacheHit)
				return cached, true, nil
			default:
				u.metrics.RecordCache(metrics.CacheMiss)
			}
		}
	}

	peers, err := u.students.ListPeers(ctx, studentID, cfg.MaxPoolSize+1)
	if err != nil {
		u.log.Error(ctx, "load peers failed", logger.Error(err))
		return matching.Bundle{}, false, ErrInternal
	}
	transitions, err := u.careers.TopTransitions(ctx, cfg.MaxTransitions+1)
	if err != nil {
		u.log.Error(ctx, "load transitions failed", logger.Error(err))
		return matching.Bundle{}, false, ErrInternal
	}
	edges, err := u.careers.SkillEdges(ctx, cfg.MaxSkillEdges+1)
	if err != nil {
		u.log.Error(ctx, "load skill graph failed", logger.Error(err))
		return matching.Bundle{}, false, ErrInternal
	}

	bundle, err := matching.BuildRecommendationBundle(
		s.Actor(),
		student.Actors(peers),
		career.Transitions(transitions),
		career.Edges(edges),
		cfg,
	)
	if err != nil {
		return matching.Bundle{}, false, engineError(err)
	}

	reportDiagnostics(ctx, u.log, u.metrics, bundle.Diagnostics)
	u.metrics.RecordBundle()
	u.log.Debug(ctx, "bundle built",
		logger.String("student_id", studentID.String()),
		logger.Int("peers", len(bundle.SimilarPeers)),
		logger.Int("learning_path", len(bundle.LearningPath)),
		logger.Int("confidence", bundle.Confidence),
	)

	if key != "" {
		if err := u.cache.SetJSON(ctx, key, bundle, u.cacheTTL); err != nil {
			u.log.Warn(ctx, "bundle cache write failed", logger.Error(err))
		}
	}
	return bundle, false, nil
}

// cacheKey returns "" when the bundle must bypass the cache.
func (u *Recommendation) cacheKey(ctx context.Context, studentID uuid.UUID, cfg matching.Config) string {
	version, err := u.careers.DatasetVersion(ctx)
	if err != nil {
		u.log.Warn(ctx, "dataset version unavailable, bypassing cache", logger.Error(err))
		return ""
	}
	key, err := BundleCacheKey(u.keyPrefix, studentID, version, u.engine.MatcherName, cfg)
	if err != nil {
		u.log.Warn(ctx, "bundle cache key unavailable, bypassing cache", logger.Error(err))
		return ""
	}
	return key
}
