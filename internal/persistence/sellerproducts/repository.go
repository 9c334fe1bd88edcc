package sellerproducts

import (
	"context"
	"log/slog"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/persistence"
)

// Repository serves the seller dashboard's read-only listing projection.
type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "sellerproducts.Repository")
	return nil
}

func (r *Repository) List(ctx context.Context) ([]core.SellerProduct, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeySellerProducts, fixtures.SellerProducts)
}
