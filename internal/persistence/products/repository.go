package products

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/persistence"
)

type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "products.Repository")
	return nil
}

func (r *Repository) List(ctx context.Context) ([]core.Product, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeyProducts, fixtures.Products)
}

// GetByID scans the stored collection; an id absent from the store falls
// back to the static marketing catalog before resolving to nil.
func (r *Repository) GetByID(ctx context.Context, id string) (*core.Product, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	product, ok := lo.Find(items, func(p core.Product) bool { return p.ID == id })
	if ok {
		return &product, nil
	}

	item := fixtures.CatalogProduct(id)
	if item == nil {
		return nil, nil
	}

	return &core.Product{
		ID:                 item.ID,
		Name:               item.Name,
		PriceCents:         ParsePriceCents(item.PriceLabel),
		OriginalPriceCents: ParsePriceCents(item.OriginalPriceLabel),
		Currency:           item.Currency,
		ImageURLs:          item.ImageURLs,
		SellerName:         item.SellerName,
		Options:            item.Options,
	}, nil
}

// ParsePriceCents converts a localized price label ("1.249,50 €") to cents.
// Only digits and the comma survive; the comma acts as the decimal point.
// Anything unparseable yields zero rather than an error.
func ParsePriceCents(label string) int64 {
	var b strings.Builder
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(strings.Replace(b.String(), ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(amount * 100))
}
