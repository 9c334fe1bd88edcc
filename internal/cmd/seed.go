package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"marketloop/internal/cmd/flags"
	"marketloop/internal/core"
)

var seedCmd = &cli.Command{
	Name:  "seed",
	Usage: "Materialize every fixture collection in the store and exit",
	Flags: []cli.Flag{
		flags.NATSUrl,
		flags.InitNATS,
		flags.MemoryStore,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		services := append(repositories(), pal.Provide(&seeder{}))
		return run(ctx, c, services...)
	},
}

// seeder lists every collection once, which persists the fixture set for any
// key not seen before.
type seeder struct {
	Logger *slog.Logger

	Posts          core.PostsRepository
	Comments       core.CommentsRepository
	Orders         core.OrdersRepository
	Products       core.ProductsRepository
	Profiles       core.ProfilesRepository
	Messaging      core.MessagingRepository
	SellerProducts core.SellerProductsRepository
}

func (s *seeder) Run(ctx context.Context) error {
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeyPosts, "count", len(posts))

	for _, post := range posts {
		comments, err := s.Comments.ListByPost(ctx, post.ID)
		if err != nil {
			return err
		}
		s.Logger.Info("seeded", "collection", core.CommentsKey(post.ID), "count", len(comments))
	}

	orders, err := s.Orders.List(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeyOrders, "count", len(orders))

	products, err := s.Products.List(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeyProducts, "count", len(products))

	profiles, err := s.Profiles.List(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeyProfiles, "count", len(profiles))

	conversations, err := s.Messaging.Conversations(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeyConversations, "count", len(conversations))

	for _, conversation := range conversations {
		messages, err := s.Messaging.Messages(ctx, conversation.ID)
		if err != nil {
			return err
		}
		s.Logger.Info("seeded", "collection", core.MessagesKey(conversation.ID), "count", len(messages))
	}

	sellerProducts, err := s.SellerProducts.List(ctx)
	if err != nil {
		return err
	}
	s.Logger.Info("seeded", "collection", core.KeySellerProducts, "count", len(sellerProducts))

	return nil
}
