package profiles

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence"
)

type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "profiles.Repository")
	return nil
}

func (r *Repository) List(ctx context.Context) ([]core.CreatorProfile, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeyProfiles, fixtures.Profiles)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*core.CreatorProfile, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	profile, ok := lo.Find(items, func(p core.CreatorProfile) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (r *Repository) Follow(ctx context.Context, id string) error {
	return r.adjustFollowers(ctx, id, 1)
}

// Unfollow decrements without clamping; a profile seeded at zero goes
// negative, matching the shipped behavior.
func (r *Repository) Unfollow(ctx context.Context, id string) error {
	return r.adjustFollowers(ctx, id, -1)
}

func (r *Repository) adjustFollowers(ctx context.Context, id string, delta int) error {
	unlock := r.KV.LockKey(core.KeyProfiles)
	defer unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated := lo.Map(items, func(p core.CreatorProfile, _ int) core.CreatorProfile {
		if p.ID != id {
			return p
		}
		p.FollowersCount += delta
		return p
	})

	return keyvalue.SetJSON(ctx, r.KV, core.KeyProfiles, updated)
}
