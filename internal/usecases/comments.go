package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Comments struct {
	Comments core.CommentsRepository
}

func (c *Comments) ListByPost(ctx context.Context, postID string) ([]core.Comment, error) {
	return c.Comments.ListByPost(ctx, postID)
}

func (c *Comments) Add(ctx context.Context, postID string, comment core.NewComment) (*core.Comment, error) {
	return c.Comments.Add(ctx, postID, comment)
}
