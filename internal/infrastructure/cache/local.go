package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Local is the in-process L1 tier: a size-bounded LRU whose entries also
// expire after a fixed TTL. Values are stored as encoded JSON so callers
// never share mutable state through the cache.
type Local struct {
	lru *expirable.LRU[string, []byte]
}

func NewLocal(size int, ttl time.Duration) *Local {
	if size <= 0 {
		size = 1
	}
	return &Local{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (l *Local) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if l == nil {
		return false, nil
	}
	b, ok := l.lru.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		l.lru.Remove(key)
		return false, err
	}
	return true, nil
}

// SetJSON ignores ttl; Local entries share the TTL given to NewLocal.
func (l *Local) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if l == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	l.lru.Add(key, b)
	return nil
}

func (l *Local) setRaw(key string, b []byte) {
	if l == nil {
		return
	}
	l.lru.Add(key, b)
}

func (l *Local) Delete(_ context.Context, key string) error {
	if l == nil {
		return nil
	}
	l.lru.Remove(key)
	return nil
}

func (l *Local) Len() int {
	if l == nil {
		return 0
	}
	return l.lru.Len()
}
