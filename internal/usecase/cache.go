package usecase

import (
	"context"
	"time"
)

// BundleCache is the read-through cache in front of bundle computation.
type BundleCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
