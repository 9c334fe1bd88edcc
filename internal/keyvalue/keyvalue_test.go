package keyvalue_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketloop/internal/config"
	"marketloop/internal/keyvalue"
)

func newStore(t *testing.T) *keyvalue.Store {
	t.Helper()

	store := &keyvalue.Store{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{MemoryStore: true},
	}
	require.NoError(t, store.Init(t.Context()))
	return store
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("get absent key returns nil without error", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		value, err := store.Get(t.Context(), "missing")
		require.NoError(t, err)
		require.Nil(t, value)
	})

	t.Run("set is immediately visible to get", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		require.NoError(t, store.Set(t.Context(), "k", []byte("v")))

		value, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		require.Equal(t, []byte("v"), value)
	})

	t.Run("remove deletes the key", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		require.NoError(t, store.Set(t.Context(), "k", []byte("v")))
		require.NoError(t, store.Remove(t.Context(), "k"))

		value, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		require.Nil(t, value)
	})

	t.Run("overwrite is last write wins", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		require.NoError(t, store.Set(t.Context(), "k", []byte("first")))
		require.NoError(t, store.Set(t.Context(), "k", []byte("second")))

		value, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		require.Equal(t, []byte("second"), value)
	})
}

func TestStoreLockKey(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	unlock := store.LockKey("k")

	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		store.LockKey("k")()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after unlock")
	}
}
