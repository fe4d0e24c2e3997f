package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type badgerClient[T any] struct {
	db *badger.DB
}

// OpenBadger opens the embedded store at path. An empty path keeps the data
// in memory only.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	return badger.Open(opts)
}

// NewBadgerClient stores values in an embedded badger database shared by the
// process. Entries expire by TTL only.
func NewBadgerClient[T any](db *badger.DB) Client[T] {
	return &badgerClient[T]{db: db}
}

func (b badgerClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	var rawVal []byte
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		rawVal, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return result, ErrNotExists
		}
		return result, fmt.Errorf("failed to get value from badger: %w", err)
	}

	if err = json.Unmarshal(rawVal, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal value from badger: %w", err)
	}

	return result, nil
}

func (b badgerClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	rawVal, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), rawVal)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to set value to badger: %w", err)
	}

	return nil
}

func (b badgerClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, b, opts)
}
