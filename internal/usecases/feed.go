// Package usecases holds the thin façades the UI layer consumes. Each binds
// one repository interface and re-exposes its operations; none of them keeps
// state of its own.
package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Feed struct {
	Posts core.PostsRepository
}

func (f *Feed) List(ctx context.Context) ([]core.Post, error) {
	return f.Posts.List(ctx)
}

func (f *Feed) GetPost(ctx context.Context, id string) (*core.Post, error) {
	return f.Posts.GetByID(ctx, id)
}

func (f *Feed) Like(ctx context.Context, id string) error {
	return f.Posts.Like(ctx, id)
}

func (f *Feed) Unlike(ctx context.Context, id string) error {
	return f.Posts.Unlike(ctx, id)
}
