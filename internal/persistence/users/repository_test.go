package users_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/config"
	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence/users"
)

func newRepository(t *testing.T) *users.Repository {
	t.Helper()

	store := &keyvalue.Store{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{MemoryStore: true},
	}
	require.NoError(t, store.Init(t.Context()))

	repo := &users.Repository{Logger: slog.New(slog.DiscardHandler), KV: store}
	require.NoError(t, repo.Init(t.Context()))
	return repo
}

func TestRepository_ProfileDraft(t *testing.T) {
	t.Parallel()

	t.Run("empty store reports the static default", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t)

		draft, err := repo.ProfileDraft(t.Context())
		require.NoError(t, err)
		require.Equal(t, fixtures.DefaultProfileDraft(), draft)
	})

	t.Run("saved draft is returned verbatim", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t)

		in := core.ProfileDraft{
			Name:        "Mia Makes Studio",
			Status:      "open",
			Description: "Small-batch ceramics",
			Category:    "home",
			SocialLinks: []core.SocialLink{{Platform: "instagram", URL: "https://instagram.com/miamakes"}},
			AvatarURL:   "https://cdn.marketloop.app/avatars/u1.jpg",
		}
		require.NoError(t, repo.SaveProfileDraft(t.Context(), in))

		out, err := repo.ProfileDraft(t.Context())
		require.NoError(t, err)
		require.Equal(t, in, out)
	})
}
