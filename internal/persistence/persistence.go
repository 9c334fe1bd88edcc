// Package persistence holds the shared seeding helper used by every domain
// repository underneath it.
package persistence

import (
	"context"

	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
)

// LoadOrSeed returns the collection stored under key. When the key is absent
// or holds an empty collection, the seed set is materialized, persisted and
// returned instead; every later read observes the persisted copy, so seeding
// happens at most once per key per store lifetime.
func LoadOrSeed[T any](ctx context.Context, kv core.KeyValueStore, key string, seed func() []T) ([]T, error) {
	items, err := keyvalue.GetJSON(ctx, kv, key, []T(nil))
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	items = seed()
	if len(items) == 0 {
		return nil, nil
	}
	if err := keyvalue.SetJSON(ctx, kv, key, items); err != nil {
		return nil, err
	}
	return items, nil
}
