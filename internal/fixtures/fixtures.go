// Package fixtures holds the static sample data each collection is seeded
// from the first time it is observed empty. Fixture edits have no effect on
// stores that already seeded.
package fixtures

import (
	"time"

	"marketloop/internal/core"
)

var seedTime = time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)

// CurrentUser is the embedded snapshot for locally-authored records.
func CurrentUser() core.User {
	return core.User{ID: core.CurrentUserID, Name: "You", Handle: "@you"}
}

var (
	mia = core.User{ID: "u1", Name: "Mia Chen", Handle: "@miamakes", AvatarURL: "https://cdn.marketloop.app/avatars/u1.jpg", Verified: true}
	leo = core.User{ID: "u2", Name: "Leo Alvarez", Handle: "@leo.films", AvatarURL: "https://cdn.marketloop.app/avatars/u2.jpg"}
	ana = core.User{ID: "u3", Name: "Ana Kovac", Handle: "@anak", AvatarURL: "https://cdn.marketloop.app/avatars/u3.jpg"}
)

func Posts() []core.Post {
	return []core.Post{
		{
			ID:            "p1",
			Content:       "New ceramic drop this Friday. Limited run of 20 pieces, studio pickup or shipping.",
			AuthorID:      mia.ID,
			Author:        mia,
			LikesCount:    128,
			CommentsCount: 14,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:            "p2",
			Content:       "Behind the scenes from yesterday's shoot. Full set goes up tomorrow.",
			AuthorID:      leo.ID,
			Author:        leo,
			LikesCount:    54,
			CommentsCount: 6,
			CreatedAt:     seedTime.Add(-26 * time.Hour),
			UpdatedAt:     seedTime.Add(-26 * time.Hour),
		},
		{
			ID:            "p3",
			Content:       "Restocked the linen totes, all three colorways back in the shop.",
			AuthorID:      ana.ID,
			Author:        ana,
			LikesCount:    201,
			CommentsCount: 23,
			CreatedAt:     seedTime.Add(-3 * 24 * time.Hour),
			UpdatedAt:     seedTime.Add(-3 * 24 * time.Hour),
		},
		{
			ID:            "p4",
			Content:       "Workshop dates for April are live. Beginners welcome, wheels provided.",
			AuthorID:      mia.ID,
			Author:        mia,
			LikesCount:    89,
			CommentsCount: 11,
			CreatedAt:     seedTime.Add(-5 * 24 * time.Hour),
			UpdatedAt:     seedTime.Add(-5 * 24 * time.Hour),
		},
	}
}

func Comments(postID string) []core.Comment {
	if postID != "p1" {
		return nil
	}
	return []core.Comment{
		{
			ID:         "c1",
			Content:    "Will the speckled glaze be part of this run?",
			CreatedAt:  seedTime.Add(20 * time.Minute),
			LikesCount: 3,
			User:       leo,
		},
		{
			ID:              "c2",
			Content:         "Yes! Six speckled pieces this time.",
			CreatedAt:       seedTime.Add(35 * time.Minute),
			LikesCount:      8,
			User:            mia,
			ReplyTo:         &leo,
			ParentCommentID: "c1",
		},
	}
}

func Products() []core.Product {
	return []core.Product{
		{
			ID:         "pr1",
			Name:       "Stoneware Mug, Speckled White",
			PriceCents: 3200,
			Currency:   "EUR",
			ImageURLs:  []string{"https://cdn.marketloop.app/products/pr1-a.jpg", "https://cdn.marketloop.app/products/pr1-b.jpg"},
			SellerName: "Mia Makes Studio",
			Options: []core.ProductOption{
				{Name: "Glaze", Values: []string{"Speckled", "Matte Black"}},
			},
			CreatedAt: seedTime.Add(-10 * 24 * time.Hour),
			UpdatedAt: seedTime.Add(-2 * 24 * time.Hour),
		},
		{
			ID:                 "pr2",
			Name:               "Linen Tote, Natural",
			PriceCents:         4500,
			OriginalPriceCents: 5900,
			Currency:           "EUR",
			ImageURLs:          []string{"https://cdn.marketloop.app/products/pr2-a.jpg"},
			SellerName:         "Kovac Textiles",
			CreatedAt:          seedTime.Add(-20 * 24 * time.Hour),
			UpdatedAt:          seedTime.Add(-20 * 24 * time.Hour),
		},
		{
			ID:         "pr3",
			Name:       "Print, 'Harbor Morning' A3",
			PriceCents: 2800,
			Currency:   "EUR",
			ImageURLs:  []string{"https://cdn.marketloop.app/products/pr3-a.jpg"},
			SellerName: "Leo Alvarez Photo",
			CreatedAt:  seedTime.Add(-8 * 24 * time.Hour),
			UpdatedAt:  seedTime.Add(-8 * 24 * time.Hour),
		},
	}
}

// CatalogItem is the richer marketing-catalog record a product lookup falls
// back to when the id is absent from the store. Prices here are display
// labels, not amounts.
type CatalogItem struct {
	ID                 string
	Name               string
	PriceLabel         string
	OriginalPriceLabel string
	Currency           string
	ImageURLs          []string
	SellerName         string
	Options            []core.ProductOption
}

var catalog = map[string]CatalogItem{
	"cat-plant-stand": {
		ID:         "cat-plant-stand",
		Name:       "Oak Plant Stand, Three Tier",
		PriceLabel: "129,00 €",
		Currency:   "EUR",
		ImageURLs:  []string{"https://cdn.marketloop.app/catalog/plant-stand.jpg"},
		SellerName: "Atelier Nord",
	},
	"cat-wall-hanging": {
		ID:                 "cat-wall-hanging",
		Name:               "Woven Wall Hanging, Large",
		PriceLabel:         "1.249,50 €",
		OriginalPriceLabel: "1.400,00 €",
		Currency:           "EUR",
		ImageURLs:          []string{"https://cdn.marketloop.app/catalog/wall-hanging.jpg"},
		SellerName:         "Kovac Textiles",
		Options: []core.ProductOption{
			{Name: "Size", Values: []string{"90cm", "120cm"}},
		},
	},
}

// CatalogProduct returns the catalog record for id, or nil.
func CatalogProduct(id string) *CatalogItem {
	item, ok := catalog[id]
	if !ok {
		return nil
	}
	return &item
}

func Orders() []core.Order {
	return []core.Order{
		{
			ID: "o1",
			Items: []core.OrderItem{
				{ProductID: "pr1", Name: "Stoneware Mug, Speckled White", Quantity: 2, PriceCents: 3200, ImageURL: "https://cdn.marketloop.app/products/pr1-a.jpg"},
			},
			TotalCents: 6400,
			Currency:   "EUR",
			Status:     core.OrderStatusPaid,
			CreatedAt:  seedTime.Add(-6 * 24 * time.Hour),
		},
		{
			ID: "o2",
			Items: []core.OrderItem{
				{ProductID: "pr2", Name: "Linen Tote, Natural", Quantity: 1, PriceCents: 4500, ImageURL: "https://cdn.marketloop.app/products/pr2-a.jpg"},
				{ProductID: "pr3", Name: "Print, 'Harbor Morning' A3", Quantity: 1, PriceCents: 2800},
			},
			TotalCents: 7300,
			Currency:   "EUR",
			Status:     core.OrderStatusPending,
			CreatedAt:  seedTime.Add(-36 * time.Hour),
		},
	}
}

func Profiles() []core.CreatorProfile {
	return []core.CreatorProfile{
		{ID: "cp1", Name: "Mia Chen", Handle: "@miamakes", FollowersCount: 12480, FollowingCount: 310, PostsCount: 96, Verified: true},
		{ID: "cp2", Name: "Leo Alvarez", Handle: "@leo.films", FollowersCount: 3210, FollowingCount: 458, PostsCount: 201},
		{ID: "cp3", Name: "Ana Kovac", Handle: "@anak", FollowersCount: 8750, FollowingCount: 120, PostsCount: 64},
	}
}

func Conversations() []core.Conversation {
	return []core.Conversation{
		{
			ID:            "u1",
			User:          mia,
			LastMessage:   "The mug ships tomorrow morning!",
			Timestamp:     seedTime.Add(-2 * time.Hour),
			UnreadCount:   1,
			HasNewMessage: true,
		},
		{
			ID:          "u2",
			User:        leo,
			LastMessage: "Sounds good, see you Thursday.",
			Timestamp:   seedTime.Add(-30 * time.Hour),
		},
	}
}

func Messages(conversationID string) []core.Message {
	switch conversationID {
	case "u1":
		return []core.Message{
			{ID: "m1", Content: "Hi! Is the speckled mug still available?", SenderID: core.CurrentUserID, ReceiverID: "u1", Timestamp: seedTime.Add(-3 * time.Hour), IsRead: true},
			{ID: "m2", Content: "It is! Want me to reserve one for you?", SenderID: "u1", ReceiverID: core.CurrentUserID, Timestamp: seedTime.Add(-165 * time.Minute), IsRead: true},
			{ID: "m3", Content: "The mug ships tomorrow morning!", SenderID: "u1", ReceiverID: core.CurrentUserID, Timestamp: seedTime.Add(-2 * time.Hour)},
		}
	case "u2":
		return []core.Message{
			{ID: "m4", Content: "Thursday works for the print pickup.", SenderID: core.CurrentUserID, ReceiverID: "u2", Timestamp: seedTime.Add(-31 * time.Hour), IsRead: true},
			{ID: "m5", Content: "Sounds good, see you Thursday.", SenderID: "u2", ReceiverID: core.CurrentUserID, Timestamp: seedTime.Add(-30 * time.Hour), IsRead: true},
		}
	default:
		return nil
	}
}

func SellerProducts() []core.SellerProduct {
	return []core.SellerProduct{
		{ID: "sp1", Name: "Stoneware Mug, Speckled White", PriceLabel: "32,00 €", Status: "active", ImageURL: "https://cdn.marketloop.app/products/pr1-a.jpg", Sales: 58, Views: 1340},
		{ID: "sp2", Name: "Espresso Cup Set of Four", PriceLabel: "68,00 €", Status: "draft", ImageURL: "https://cdn.marketloop.app/products/sp2-a.jpg", Views: 212},
		{ID: "sp3", Name: "Serving Bowl, Matte Black", PriceLabel: "54,00 €", Status: "sold_out", ImageURL: "https://cdn.marketloop.app/products/sp3-a.jpg", Sales: 20, Views: 980},
	}
}

// DefaultProfileDraft is what an installation reports before the user ever
// saves onboarding data.
func DefaultProfileDraft() core.ProfileDraft {
	return core.ProfileDraft{
		Name:     "Your shop",
		Status:   "new",
		Category: "general",
	}
}
