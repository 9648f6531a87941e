package career

import (
	"context"
	"time"
)

type Repository interface {
	// TopTransitions returns transitions ordered by success rate, best first.
	TopTransitions(ctx context.Context, limit int) ([]Transition, error)
	SkillEdges(ctx context.Context, limit int) ([]SkillRelationship, error)
	// DatasetVersion changes whenever student, job or career data changes.
	DatasetVersion(ctx context.Context) (time.Time, error)
}
