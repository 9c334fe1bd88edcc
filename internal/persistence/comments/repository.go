package comments

import (
	"context"
	"log/slog"
	"strconv"
	"time"

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
	r.Logger = r.Logger.With("component", "comments.Repository")
	return nil
}

func (r *Repository) ListByPost(ctx context.Context, postID string) ([]core.Comment, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.CommentsKey(postID), func() []core.Comment {
		return fixtures.Comments(postID)
	})
}

// Add appends a comment authored by the current user. Reply attribution is
// carried as given; the referenced parent is not checked for existence.
func (r *Repository) Add(ctx context.Context, postID string, comment core.NewComment) (*core.Comment, error) {
	key := core.CommentsKey(postID)

	unlock := r.KV.LockKey(key)
	defer unlock()

	items, err := r.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := core.Comment{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Content:         comment.Content,
		CreatedAt:       now,
		User:            fixtures.CurrentUser(),
		ReplyTo:         comment.ReplyTo,
		ParentCommentID: comment.ParentCommentID,
	}

	if err := keyvalue.SetJSON(ctx, r.KV, key, append(items, created)); err != nil {
		return nil, err
	}
	return &created, nil
}
