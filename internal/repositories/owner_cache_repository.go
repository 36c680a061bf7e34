package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"quoterelay/internal/models"
)

// OwnerCacheRepository keeps sales rep lookups keyed by HubSpot owner id.
type OwnerCacheRepository interface {
	Get(ctx context.Context, ownerID string) (*models.SalesRep, bool)
	Set(ctx context.Context, ownerID string, rep *models.SalesRep) error
}

type memoryEntry struct {
	rep       models.SalesRep
	expiresAt time.Time
}

// MemoryOwnerCache is a process-local OwnerCacheRepository.
type MemoryOwnerCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryOwnerCache(ttl time.Duration) *MemoryOwnerCache {
	return &MemoryOwnerCache{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryOwnerCache) Get(_ context.Context, ownerID string) (*models.SalesRep, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[ownerID]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && m.now().After(e.expiresAt) {
		delete(m.data, ownerID)
		return nil, false
	}
	rep := e.rep
	return &rep, true
}

func (m *MemoryOwnerCache) Set(_ context.Context, ownerID string, rep *models.SalesRep) error {
	if rep == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ownerID] = memoryEntry{rep: *rep, expiresAt: m.now().Add(m.ttl)}
	return nil
}

const ownerKeyPrefix = "quoterelay:owner:"

// RedisOwnerCache stores reps as JSON so several relay instances share lookups.
type RedisOwnerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOwnerCache(addr, password string, db int, ttl time.Duration) *RedisOwnerCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisOwnerCacheWithClient(rdb, ttl)
}

func NewRedisOwnerCacheWithClient(client *redis.Client, ttl time.Duration) *RedisOwnerCache {
	return &RedisOwnerCache{client: client, ttl: ttl}
}

func (r *RedisOwnerCache) Get(ctx context.Context, ownerID string) (*models.SalesRep, bool) {
	val, err := r.client.Get(ctx, ownerKeyPrefix+ownerID).Bytes()
	if err != nil {
		return nil, false
	}
	var rep models.SalesRep
	if err := json.Unmarshal(val, &rep); err != nil {
		return nil, false
	}
	return &rep, true
}

func (r *RedisOwnerCache) Set(ctx context.Context, ownerID string, rep *models.SalesRep) error {
	if rep == nil {
		return nil
	}
	buf, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode owner %s: %w", ownerID, err)
	}
	return r.client.Set(ctx, ownerKeyPrefix+ownerID, buf, r.ttl).Err()
}

func (r *RedisOwnerCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisOwnerCache) Close() error {
	return r.client.Close()
}
