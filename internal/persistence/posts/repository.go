package posts

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
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

func (r *Repository) List(ctx context.Context) ([]core.Post, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeyPosts, fixtures.Posts)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*core.Post, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	post, ok := lo.Find(items, func(p core.Post) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (r *Repository) Like(ctx context.Context, id string) error {
	return r.setLiked(ctx, id, true)
}

func (r *Repository) Unlike(ctx context.Context, id string) error {
	return r.setLiked(ctx, id, false)
}

// setLiked rewrites the whole collection with the one affected post
// replaced. The like counter moves by exactly one and never drops below
// zero.
func (r *Repository) setLiked(ctx context.Context, id string, liked bool) error {
	unlock := r.KV.LockKey(core.KeyPosts)
	defer unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated := lo.Map(items, func(p core.Post, _ int) core.Post {
		if p.ID != id {
			return p
		}
		p.IsLiked = liked
		if liked {
			p.LikesCount++
		} else if p.LikesCount > 0 {
			p.LikesCount--
		}
		return p
	})

	return keyvalue.SetJSON(ctx, r.KV, core.KeyPosts, updated)
}
