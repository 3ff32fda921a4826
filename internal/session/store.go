package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a single-key slot in an external key-value store holding the
// serialized session record.
type Store interface {
	// Get returns the stored record, or ok=false when nothing is stored.
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, data []byte) error
	Remove(ctx context.Context) error
}

// StoreProvider hands out Store slots by key so one backend can serve many
// concurrent sessions.
type StoreProvider interface {
	Store(key string) Store
}

// MemoryProvider is a process-local StoreProvider used in tests and when the
// server runs without Redis.
type MemoryProvider struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{data: make(map[string][]byte)}
}

func (p *MemoryProvider) Store(key string) Store {
	return &memoryStore{p: p, key: key}
}

type memoryStore struct {
	p   *MemoryProvider
	key string
}

func (s *memoryStore) Get(_ context.Context) ([]byte, bool, error) {
	s.p.mu.RLock()
	defer s.p.mu.RUnlock()
	b, ok := s.p.data[s.key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (s *memoryStore) Set(_ context.Context, data []byte) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	s.p.data[s.key] = append([]byte(nil), data...)
	return nil
}

func (s *memoryStore) Remove(_ context.Context) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	delete(s.p.data, s.key)
	return nil
}

// RedisProvider stores session records in Redis with a TTL.
type RedisProvider struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProvider(rdb *redis.Client, ttl time.Duration) *RedisProvider {
	return &RedisProvider{rdb: rdb, ttl: ttl}
}

func (p *RedisProvider) Store(key string) Store {
	return &redisStore{rdb: p.rdb, key: key, ttl: p.ttl}
}

type redisStore struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func (s *redisStore) Get(ctx context.Context) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *redisStore) Set(ctx context.Context, data []byte) error {
	return s.rdb.Set(ctx, s.key, data, s.ttl).Err()
}

func (s *redisStore) Remove(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}
