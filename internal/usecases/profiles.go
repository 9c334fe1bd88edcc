package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Profiles struct {
	Profiles core.ProfilesRepository
}

func (p *Profiles) List(ctx context.Context) ([]core.CreatorProfile, error) {
	return p.Profiles.List(ctx)
}

func (p *Profiles) GetProfile(ctx context.Context, id string) (*core.CreatorProfile, error) {
	return p.Profiles.GetByID(ctx, id)
}

// ToggleFollow dispatches on the caller's belief about the current follow
// state. With a single local user that belief cannot desynchronize from the
// store; a networked backend would have to reconcile first.
func (p *Profiles) ToggleFollow(ctx context.Context, id string, isFollowing bool) error {
	if isFollowing {
		return p.Profiles.Unfollow(ctx, id)
	}
	return p.Profiles.Follow(ctx, id)
}
