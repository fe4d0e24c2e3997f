package cache

import (
	"context"
	"errors"
	"time"

	"github.com/budhip/go-fp-ledger/internal/common/log"
)

// Client is a typed read-through cache. Values are JSON encoded so every
// backend stores the same representation.
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
	ErrInvalidType         = errors.New("invalid type result")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)
}

// getOrSet is the read-through flow shared by every backend. A miss calls the
// callback and stores its result. A callback error is returned untouched and
// nothing is stored. A failed store is logged and the computed value returned.
func getOrSet[T any](ctx context.Context, c Client[T], opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	obj, err := c.Get(ctx, opts.Key)
	if err == nil {
		return obj, nil
	}

	if !errors.Is(err, ErrNotExists) {
		return result, err
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if errSet := c.Set(ctx, opts.Key, obj, opts.TTL); errSet != nil {
		log.Warn(ctx, "[CACHE] failed to store computed value", log.String("key", opts.Key), log.Err(errSet))
	}

	return obj, nil
}
