package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Account struct {
	Users core.UsersRepository
}

func (a *Account) ProfileDraft(ctx context.Context) (core.ProfileDraft, error) {
	return a.Users.ProfileDraft(ctx)
}

func (a *Account) SaveProfileDraft(ctx context.Context, draft core.ProfileDraft) error {
	return a.Users.SaveProfileDraft(ctx, draft)
}
