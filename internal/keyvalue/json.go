package keyvalue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"marketloop/internal/core"
)

// ErrSerialization wraps a value that cannot be encoded to JSON.
var ErrSerialization = errors.New("cannot serialize value")

// GetJSON reads and decodes the value under key. An absent key or a payload
// that fails to parse both yield the fallback; a corrupted entry is never
// surfaced to the caller. Store-level failures do propagate.
func GetJSON[T any](ctx context.Context, kv core.KeyValueStore, key string, fallback T) (T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if len(raw) == 0 {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback, nil
	}
	return value, nil
}

// SetJSON encodes value and writes it under key.
func SetJSON[T any](ctx context.Context, kv core.KeyValueStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrSerialization, key, err)
	}
	return kv.Set(ctx, key, raw)
}
