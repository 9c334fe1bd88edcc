package keyvalue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/keyvalue"
)

type payload struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Labels []string `json:"labels,omitempty"`
}

func TestGetJSON(t *testing.T) {
	t.Parallel()

	t.Run("absent key yields the fallback", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		fallback := payload{Name: "default", Count: 1}
		value, err := keyvalue.GetJSON(t.Context(), store, "missing", fallback)
		require.NoError(t, err)
		require.Equal(t, fallback, value)
	})

	t.Run("unparseable payload yields the fallback without error", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)
		require.NoError(t, store.Set(t.Context(), "k", []byte("{not json")))

		fallback := payload{Name: "default"}
		value, err := keyvalue.GetJSON(t.Context(), store, "k", fallback)
		require.NoError(t, err)
		require.Equal(t, fallback, value)
	})

	t.Run("round trip is deep equal", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		in := payload{Name: "mug", Count: 3, Labels: []string{"ceramic", "studio"}}
		require.NoError(t, keyvalue.SetJSON(t.Context(), store, "k", in))

		out, err := keyvalue.GetJSON(t.Context(), store, "k", payload{})
		require.NoError(t, err)
		require.Equal(t, in, out)
	})
}

func TestSetJSON(t *testing.T) {
	t.Parallel()

	t.Run("unencodable value fails with ErrSerialization", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		err := keyvalue.SetJSON(t.Context(), store, "k", make(chan int))
		require.ErrorIs(t, err, keyvalue.ErrSerialization)

		value, getErr := store.Get(t.Context(), "k")
		require.NoError(t, getErr)
		require.Nil(t, value)
	})
}
