package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache: key not found")

// Store is the key-value cache used for short-lived state (OTP codes, attempt
// counters, token blacklist, rate limits). Keys are namespaced by callers.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Incr increments key and (re)applies ttl, returning the new value.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// IncrWindow increments key and sets ttl only when the key is created,
	// giving a fixed window counter.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)

	// TTL returns the remaining lifetime of key, or zero when it has none.
	TTL(ctx context.Context, key string) (time.Duration, error)

	Ping(ctx context.Context) error
}
