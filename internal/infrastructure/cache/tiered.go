package cache

import (
	"context"
	"encoding/json"
	"time"

	"placement-engine/internal/pkg/logger"
)

// Tier is one cache level. Redis and Local both satisfy it.
type Tier interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Tiered reads L1 then L2 and back-fills L1 on an L2 hit. Writes go to
// both. L2 failures are logged and reported as misses.
type Tiered struct {
	l1  *Local
	l2  Tier
	log logger.Logger
}

func NewTiered(l1 *Local, l2 Tier, log logger.Logger) *Tiered {
	if log == nil {
		log = logger.Nop()
	}
	return &Tiered{l1: l1, l2: l2, log: log}
}

func (t *Tiered) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if ok, err := t.l1.GetJSON(ctx, key, out); err == nil && ok {
		return true, nil
	}
	if t.l2 == nil {
		return false, nil
	}

	var raw json.RawMessage
	ok, err := t.l2.GetJSON(ctx, key, &raw)
	if err != nil {
		t.log.Debug(ctx, "l2 cache read failed", logger.String("key", key), logger.Error(err))
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	t.l1.setRaw(key, raw)
	return true, nil
}

func (t *Tiered) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	t.l1.setRaw(key, b)
	if t.l2 == nil {
		return nil
	}
	return t.l2.SetJSON(ctx, key, json.RawMessage(b), ttl)
}

func (t *Tiered) Delete(ctx context.Context, key string) error {
	_ = t.l1.Delete(ctx, key)
	if t.l2 == nil {
		return nil
	}
	return t.l2.Delete(ctx, key)
}
