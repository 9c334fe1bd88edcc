package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"marketloop/internal/api"
	"marketloop/internal/cmd/flags"
	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
	"marketloop/internal/metrics"
	"marketloop/internal/persistence/comments"
	"marketloop/internal/persistence/messaging"
	"marketloop/internal/persistence/orders"
	"marketloop/internal/persistence/posts"
	"marketloop/internal/persistence/products"
	"marketloop/internal/persistence/profiles"
	"marketloop/internal/persistence/sellerproducts"
	"marketloop/internal/persistence/users"
	"marketloop/internal/usecases"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Run the data layer: key-value store, HTTP API and metrics",
	Flags: []cli.Flag{
		flags.NATSUrl,
		flags.InitNATS,
		flags.MemoryStore,
		flags.Listen,
		flags.MetricsListen,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		services := append(repositories(),
			pal.Provide(&api.Server{}),
			pal.Provide(&metrics.HTTPServer{}),
			pal.Provide(&metrics.Collector{}),
		)
		return run(ctx, c, services...)
	},
}

// repositories is the composition root proper: one singleton per repository
// and per use-case, bound for the lifetime of the process. The store and the
// repositories are provided under their core interfaces so that interface-typed
// fields resolve.
func repositories() []pal.ServiceDef {
	return []pal.ServiceDef{
		pal.Provide[core.KeyValueStore](&keyvalue.Store{}),

		pal.Provide[core.PostsRepository](&posts.Repository{}),
		pal.Provide[core.CommentsRepository](&comments.Repository{}),
		pal.Provide[core.OrdersRepository](&orders.Repository{}),
		pal.Provide[core.ProductsRepository](&products.Repository{}),
		pal.Provide[core.ProfilesRepository](&profiles.Repository{}),
		pal.Provide[core.MessagingRepository](&messaging.Repository{}),
		pal.Provide[core.UsersRepository](&users.Repository{}),
		pal.Provide[core.SellerProductsRepository](&sellerproducts.Repository{}),

		pal.Provide(&usecases.Feed{}),
		pal.Provide(&usecases.Comments{}),
		pal.Provide(&usecases.Marketplace{}),
		pal.Provide(&usecases.Orders{}),
		pal.Provide(&usecases.Profiles{}),
		pal.Provide(&usecases.Messaging{}),
		pal.Provide(&usecases.Account{}),
		pal.Provide(&usecases.Seller{}),
	}
}
