package student

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("student not found")

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Student, error)
	// ListPeers returns up to limit students other than excludeID, ordered by id.
	ListPeers(ctx context.Context, excludeID uuid.UUID, limit int) ([]Student, error)
	ListStudents(ctx context.Context, limit int) ([]Student, error)
}
