package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Marketplace struct {
	Products core.ProductsRepository
}

func (m *Marketplace) List(ctx context.Context) ([]core.Product, error) {
	return m.Products.List(ctx)
}

func (m *Marketplace) GetProduct(ctx context.Context, id string) (*core.Product, error) {
	return m.Products.GetByID(ctx, id)
}
