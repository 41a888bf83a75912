package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local Store backed by go-cache. It runs without a
// cleanup janitor, so expired entries are dropped lazily on read. Key growth
// is unbounded; the keyspace is low-cardinality in practice.
type MemoryStore struct {
	entries *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: gocache.New(gocache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, found := s.entries.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.entries.Set(key, value, ttl)
	return nil
}

var _ Store = (*MemoryStore)(nil)
