package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/core"
	"marketloop/internal/usecases"
)

type fakeProfiles struct {
	core.ProfilesRepository

	followed   []string
	unfollowed []string
}

func (f *fakeProfiles) Follow(_ context.Context, id string) error {
	f.followed = append(f.followed, id)
	return nil
}

func (f *fakeProfiles) Unfollow(_ context.Context, id string) error {
	f.unfollowed = append(f.unfollowed, id)
	return nil
}

func TestProfiles_ToggleFollow(t *testing.T) {
	t.Parallel()

	t.Run("not following yet dispatches to follow", func(t *testing.T) {
		t.Parallel()

		fake := &fakeProfiles{}
		uc := &usecases.Profiles{Profiles: fake}

		require.NoError(t, uc.ToggleFollow(t.Context(), "cp1", false))
		require.Equal(t, []string{"cp1"}, fake.followed)
		require.Empty(t, fake.unfollowed)
	})

	t.Run("already following dispatches to unfollow", func(t *testing.T) {
		t.Parallel()

		fake := &fakeProfiles{}
		uc := &usecases.Profiles{Profiles: fake}

		require.NoError(t, uc.ToggleFollow(t.Context(), "cp1", true))
		require.Equal(t, []string{"cp1"}, fake.unfollowed)
		require.Empty(t, fake.followed)
	})
}
