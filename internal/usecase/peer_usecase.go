package usecase

import (
	"context"
	"errors"
	"fmt"

	"placement-engine/internal/domain/matching"
	"placement-engine/internal/domain/student"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"

	"github.com/google/uuid"
)

type PeerUsecase interface {
	RankPeers(ctx context.Context, studentID uuid.UUID, ov Overrides) (matching.PeerRanking, error)
}

type Peers struct {
	students student.Repository
	engine   Engine
	metrics  *metrics.Manager
	log      logger.Logger
}

func NewPeerUsecase(students student.Repository, engine Engine, m *metrics.Manager, log logger.Logger) *Peers {
	if log == nil {
		log = logger.Nop()
	}
	return &Peers{students: students, engine: engine, metrics: m, log: log.Named("peers")}
}

func (u *Peers) RankPeers(ctx context.Context, studentID uuid.UUID, ov Overrides) (matching.PeerRanking, error) {
	if studentID == uuid.Nil {
		return matching.PeerRanking{}, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}
	cfg, err := ov.apply(u.engine.Config, topNPeers)
	if err != nil {
		return matching.PeerRanking{}, err
	}

	s, err := u.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return matching.PeerRanking{}, ErrStudentNotFound
		}
		u.log.Error(ctx, "load student failed", logger.String("student_id", studentID.String()), logger.Error(err))
		return matching.PeerRanking{}, ErrInternal
	}

	pool, err := u.students.ListPeers(ctx, studentID, cfg.MaxPoolSize+1)
	if err != nil {
		u.log.Error(ctx, "load peers failed", logger.Error(err))
		return matching.PeerRanking{}, ErrInternal
	}

	res, err := matching.RankPeersWithConfig(s.Actor(), student.Actors(pool), cfg)
	if err != nil {
		return matching.PeerRanking{}, engineError(err)
	}
	reportDiagnostics(ctx, u.log, u.metrics, res.Diagnostics)
	return res, nil
}
