package seeder

import (
	"context"
	"fmt"

	"placement-engine/internal/database"
	"placement-engine/internal/pkg/logger"
)

type Runner struct {
	Seeders []Seeder
	Logger  logger.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := r.Logger
	if log == nil {
		log = logger.Nop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info(ctx, "seeder finished", logger.String("seeder", s.Name()))
	}
	return nil
}
