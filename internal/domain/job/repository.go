package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Posting, error)
	// ListOpen returns open postings, newest first.
	ListOpen(ctx context.Context, limit int) ([]Posting, error)
}
