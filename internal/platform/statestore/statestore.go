// Package statestore holds short-lived, single-use key/value entries,
// used for the OAuth2 PKCE state/verifier pairs. Entries expire on their
// own and are consumed atomically: the second consumer of a key always
// misses, which is what makes a replayed social callback fail.
package statestore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is absent, expired, or already
// consumed.
var ErrNotFound = errors.New("statestore: key not found")

// Store is the single-use TTL store contract.
type Store interface {
	// Put stores value under key for at most ttl.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Consume returns the value for key and removes it in the same
	// operation. A second Consume of the same key returns ErrNotFound.
	Consume(ctx context.Context, key string) (string, error)

	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	Driver        string // "memory" | "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New creates a store for the configured driver. Memory is the default
// and is suitable for a single node; redis keeps the flow working behind
// a horizontally scaled deployment.
func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg)
	case "memory", "":
		return NewMemory(), nil
	default:
		return NewMemory(), nil
	}
}
