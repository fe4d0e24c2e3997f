package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budhip/go-fp-ledger/internal/common"
)

//go:generate mockgen -source=cache.go -destination=mock/cache_mock.go -package=mock

// CacheRepository holds short lived keys such as the per run recurrence locks.
type CacheRepository interface {
	SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cacheClient struct {
	redis *redis.Client
}

func NewCacheRepository(redis *redis.Client) CacheRepository {
	return &cacheClient{redis: redis}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return val, common.ErrDataNotFound
		}
		return val, err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) Del(ctx context.Context, keys ...string) error {
	return cc.redis.Del(ctx, keys...).Err()
}

type localEntry struct {
	value string
	expAt time.Time
}

// localCache serves single process deployments without redis.
type localCache struct {
	mu      sync.Mutex
	entries map[string]localEntry
	now     func() time.Time
}

func NewLocalCacheRepository() CacheRepository {
	return &localCache{entries: map[string]localEntry{}, now: time.Now}
}

func (lc *localCache) live(key string) (localEntry, bool) {
	e, ok := lc.entries[key]
	if !ok {
		return e, false
	}
	if !e.expAt.IsZero() && !e.expAt.After(lc.now()) {
		delete(lc.entries, key)
		return e, false
	}
	return e, true
}

func (lc *localCache) SetIfNotExists(_ context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if _, ok := lc.live(key); ok {
		return false, nil
	}

	e := localEntry{value: strings.TrimSpace(toString(value))}
	if ttl > 0 {
		e.expAt = lc.now().Add(ttl)
	}
	lc.entries[key] = e
	return true, nil
}

func (lc *localCache) Get(_ context.Context, key string) (string, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	e, ok := lc.live(key)
	if !ok {
		return "", common.ErrDataNotFound
	}
	return e.value, nil
}

func (lc *localCache) Del(_ context.Context, keys ...string) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	for _, k := range keys {
		delete(lc.entries, k)
	}
	return nil
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
