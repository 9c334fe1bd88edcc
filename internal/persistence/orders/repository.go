package orders

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/persistence"
)

// Repository is read-only; orders are written by the checkout backend, not
// by this layer.
type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "orders.Repository")
	return nil
}

func (r *Repository) List(ctx context.Context) ([]core.Order, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeyOrders, fixtures.Orders)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*core.Order, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	order, ok := lo.Find(items, func(o core.Order) bool { return o.ID == id })
	if !ok {
		return nil, nil
	}
	return &order, nil
}
