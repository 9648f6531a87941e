package seeder

import (
	"context"

	"placement-engine/internal/database"
)

// Seeder inserts reference data. Implementations must be idempotent.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
