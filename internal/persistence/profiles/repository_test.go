package profiles_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/config"
	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence/profiles"
)

func newRepository(t *testing.T) (*profiles.Repository, *keyvalue.Store) {
	t.Helper()

	store := &keyvalue.Store{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{MemoryStore: true},
	}
	require.NoError(t, store.Init(t.Context()))

	repo := &profiles.Repository{Logger: slog.New(slog.DiscardHandler), KV: store}
	require.NoError(t, repo.Init(t.Context()))
	return repo, store
}

func TestRepository_FollowUnfollow(t *testing.T) {
	t.Parallel()

	t.Run("follow then unfollow restores the counter", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)

		before, err := repo.GetByID(t.Context(), "cp1")
		require.NoError(t, err)
		require.NotNil(t, before)

		require.NoError(t, repo.Follow(t.Context(), "cp1"))

		followed, err := repo.GetByID(t.Context(), "cp1")
		require.NoError(t, err)
		require.Equal(t, before.FollowersCount+1, followed.FollowersCount)

		require.NoError(t, repo.Unfollow(t.Context(), "cp1"))

		after, err := repo.GetByID(t.Context(), "cp1")
		require.NoError(t, err)
		require.Equal(t, before.FollowersCount, after.FollowersCount)
	})

	t.Run("unfollow does not clamp at zero", func(t *testing.T) {
		t.Parallel()

		repo, store := newRepository(t)

		seeded := []core.CreatorProfile{{ID: "cp0", Name: "Fresh", FollowersCount: 0}}
		require.NoError(t, keyvalue.SetJSON(t.Context(), store, core.KeyProfiles, seeded))

		require.NoError(t, repo.Unfollow(t.Context(), "cp0"))

		profile, err := repo.GetByID(t.Context(), "cp0")
		require.NoError(t, err)
		require.Equal(t, -1, profile.FollowersCount)
	})

	t.Run("unknown profile id is a no-op write", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)

		before, err := repo.List(t.Context())
		require.NoError(t, err)

		require.NoError(t, repo.Follow(t.Context(), "ghost"))

		after, err := repo.List(t.Context())
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}
