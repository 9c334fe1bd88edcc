package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Seller struct {
	SellerProducts core.SellerProductsRepository
}

func (s *Seller) Products(ctx context.Context) ([]core.SellerProduct, error) {
	return s.SellerProducts.List(ctx)
}
