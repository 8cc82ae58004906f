// internal/records/blob.go

// Package records is the single-writer store for everything the family
// records: moments, vaccines, growth, sleep, the sleep/humor diary and
// family members. State lives in memory; every mutation is serialized to a
// key-value blob store as one JSON document per collection.
package records

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"babybook-core/internal/common/database"
	apperrors "babybook-core/internal/common/errors"
)

// Blob keys, one JSON document per collection.
const (
	KeyMoments     = "babybook_moments"
	KeyVaccines    = "babybook_vaccines"
	KeyGrowth      = "babybook_growth"
	KeySleep       = "babybook_sleep"
	KeySleepHumor  = "babybook_sleep_humor"
	KeyFamily      = "babybook_family"
	KeyCurrentBaby = "babybook_current_baby"
)

// BlobStore abstracts the key-value persistence layer. Load reports whether
// the key existed; a missing key is not an error.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// MemoryBlobStore keeps blobs in a map. Used in tests and as a fallback when
// no external store is configured.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (m *MemoryBlobStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *MemoryBlobStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blobs[key] = cp
	return nil
}

// RedisBlobStore persists blobs through the shared redis client. Blobs never
// expire; the record book is the system of record.
type RedisBlobStore struct {
	client *database.RedisClient
}

func NewRedisBlobStore(client *database.RedisClient) *RedisBlobStore {
	return &RedisBlobStore{client: client}
}

func (r *RedisBlobStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key)
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStoreLoadFailedError(key, err)
	}
	return []byte(data), true, nil
}

func (r *RedisBlobStore) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, string(data), 0); err != nil {
		return apperrors.NewStorePersistFailedError(key, err)
	}
	return nil
}
