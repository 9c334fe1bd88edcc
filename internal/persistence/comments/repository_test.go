package comments_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/config"
	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence/comments"
)

func newRepository(t *testing.T) *comments.Repository {
	t.Helper()

	store := &keyvalue.Store{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{MemoryStore: true},
	}
	require.NoError(t, store.Init(t.Context()))

	repo := &comments.Repository{Logger: slog.New(slog.DiscardHandler), KV: store}
	require.NoError(t, repo.Init(t.Context()))
	return repo
}

func TestRepository_Add(t *testing.T) {
	t.Parallel()

	t.Run("appends after the seeded comments", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t)

		seeded, err := repo.ListByPost(t.Context(), "p1")
		require.NoError(t, err)
		require.NotEmpty(t, seeded)

		created, err := repo.Add(t.Context(), "p1", core.NewComment{Content: "love this"})
		require.NoError(t, err)
		require.Equal(t, core.CurrentUserID, created.User.ID)
		require.NotEmpty(t, created.ID)

		all, err := repo.ListByPost(t.Context(), "p1")
		require.NoError(t, err)
		require.Len(t, all, len(seeded)+1)
		stored := all[len(all)-1]
		// The JSON round trip strips the monotonic clock reading and stores
		// the timestamp in UTC, so compare instants rather than representations.
		require.True(t, created.CreatedAt.Equal(stored.CreatedAt))
		stored.CreatedAt = created.CreatedAt
		require.Equal(t, *created, stored)
	})

	t.Run("carries reply attribution without checking the parent", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t)

		replyTo := core.User{ID: "u2", Name: "Leo Alvarez"}
		created, err := repo.Add(t.Context(), "p1", core.NewComment{
			Content:         "agreed",
			ReplyTo:         &replyTo,
			ParentCommentID: "does-not-exist",
		})
		require.NoError(t, err)
		require.Equal(t, &replyTo, created.ReplyTo)
		require.Equal(t, "does-not-exist", created.ParentCommentID)
	})

	t.Run("works on a post with no prior comments", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t)

		created, err := repo.Add(t.Context(), "p4", core.NewComment{Content: "first!"})
		require.NoError(t, err)

		all, err := repo.ListByPost(t.Context(), "p4")
		require.NoError(t, err)
		require.Len(t, all, 1)
		stored := all[0]
		// The JSON round trip strips the monotonic clock reading and stores
		// the timestamp in UTC, so compare instants rather than representations.
		require.True(t, created.CreatedAt.Equal(stored.CreatedAt))
		stored.CreatedAt = created.CreatedAt
		require.Equal(t, *created, stored)
	})
}
