package cache

import (
	"context"
	"time"
)

// Store is a key/value cache holding raw []byte payloads. Values expire after
// the TTL given at Set time; an expired entry reads as absent. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
