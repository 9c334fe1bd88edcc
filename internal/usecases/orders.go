package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Orders struct {
	Orders core.OrdersRepository
}

func (o *Orders) List(ctx context.Context) ([]core.Order, error) {
	return o.Orders.List(ctx)
}

func (o *Orders) GetOrder(ctx context.Context, id string) (*core.Order, error) {
	return o.Orders.GetByID(ctx, id)
}
