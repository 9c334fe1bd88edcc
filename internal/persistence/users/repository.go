package users

import (
	"context"
	"log/slog"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/keyvalue"
)

type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "users.Repository")
	return nil
}

// ProfileDraft returns the saved singleton draft, or the static default when
// nothing was ever saved. Unlike the collections, the default is not written
// back on read.
func (r *Repository) ProfileDraft(ctx context.Context) (core.ProfileDraft, error) {
	return keyvalue.GetJSON(ctx, r.KV, core.KeyProfileDraft, fixtures.DefaultProfileDraft())
}

func (r *Repository) SaveProfileDraft(ctx context.Context, draft core.ProfileDraft) error {
	unlock := r.KV.LockKey(core.KeyProfileDraft)
	defer unlock()

	return keyvalue.SetJSON(ctx, r.KV, core.KeyProfileDraft, draft)
}
