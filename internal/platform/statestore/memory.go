package statestore

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process store backed by go-cache. The mutex makes
// Consume atomic with respect to concurrent consumers; go-cache itself
// handles expiry.
type Memory struct {
	mu sync.Mutex
	c  *gocache.Cache
}

// NewMemory creates an in-process store.
func NewMemory() *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

func (m *Memory) Put(_ context.Context, key, value string, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Memory) Consume(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.c.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	m.c.Delete(key)
	s, _ := v.(string)
	return s, nil
}

func (m *Memory) Close() error { return nil }
