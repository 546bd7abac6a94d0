// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/models"
)

// Demo user IDs are name-based UUIDs so they stay stable across restarts.
var (
	// DemoUserID has stated preferences and a like history.
	DemoUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://stylist.local/demo/ava")).String()

	// DemoNewUserID has no preferences and no likes.
	DemoNewUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://stylist.local/demo/noah")).String()
)

// demoEpoch anchors outfit and like timestamps so seeded data is identical
// on every run.
var demoEpoch = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

var demoProducts = []models.Product{
	{ID: "p-denim-jacket", Type: "jacket", Title: "Blue Denim Jacket", Description: "Classic wash denim", Brand: "Northline", Price: 89},
	{ID: "p-white-tee", Type: "shirt", Title: "White Cotton Tee", Description: "Everyday crew neck", Brand: "Basics Co", Price: 19},
	{ID: "p-black-jeans", Type: "pants", Title: "Black Slim Jeans", Description: "Stretch denim", Brand: "Northline", Price: 69},
	{ID: "p-white-sneakers", Type: "shoes", Title: "White Leather Sneakers", Description: "Minimal low tops", Brand: "Stride", Price: 110},
	{ID: "p-navy-blazer", Type: "jacket", Title: "Navy Wool Blazer", Description: "Tailored fit", Brand: "Atelier Nord", Price: 240},
	{ID: "p-grey-trousers", Type: "pants", Title: "Grey Pleated Trousers", Description: "Wool blend", Brand: "Atelier Nord", Price: 150},
	{ID: "p-brown-loafers", Type: "shoes", Title: "Brown Suede Loafers", Description: "Hand stitched", Brand: "Calder", Price: 180},
	{ID: "p-floral-dress", Type: "dress", Title: "Floral Maxi Dress", Description: "Pink and green print", Brand: "Meadow", Price: 95},
	{ID: "p-beige-hat", Type: "hat", Title: "Beige Straw Hat", Description: "Wide brim", Brand: "Meadow", Price: 35},
	{ID: "p-black-hoodie", Type: "hoodie", Title: "Black Fleece Hoodie", Description: "Oversized fit", Brand: "Voltline", Price: 75},
	{ID: "p-red-joggers", Type: "pants", Title: "Red Track Joggers", Description: "Tapered leg", Brand: "Voltline", Price: 55},
	{ID: "p-silver-chain", Type: "accessory", Title: "Silver Chain Necklace", Description: "Sterling silver", Brand: "Forge", Price: 60},
	{ID: "p-green-parka", Type: "jacket", Title: "Olive Green Parka", Description: "Insulated hood", Brand: "Northline", Price: 210},
	{ID: "p-cream-knit", Type: "sweater", Title: "Cream Cable Knit", Description: "Merino wool", Brand: "Basics Co", Price: 85},
}

type demoOutfit struct {
	id       int64
	title    string
	style    string
	points   int
	products []string
}

var demoOutfits = []demoOutfit{
	{1, "Weekend Denim", "casual,streetwear", 72, []string{"p-denim-jacket", "p-white-tee", "p-black-jeans", "p-white-sneakers"}},
	{2, "Office Classic", "formal,business", 85, []string{"p-navy-blazer", "p-grey-trousers", "p-brown-loafers"}},
	{3, "Garden Party", "boho,romantic", 64, []string{"p-floral-dress", "p-beige-hat"}},
	{4, "Night Out", "streetwear,edgy", 58, []string{"p-black-hoodie", "p-black-jeans", "p-silver-chain"}},
	{5, "Athleisure Run", "sporty,casual", 47, []string{"p-black-hoodie", "p-red-joggers", "p-white-sneakers"}},
	{6, "Smart Casual Friday", "smart casual,business", 77, []string{"p-navy-blazer", "p-white-tee", "p-black-jeans", "p-brown-loafers"}},
	{7, "Winter Layers", "casual,outdoor", 69, []string{"p-green-parka", "p-cream-knit", "p-black-jeans"}},
	{8, "Summer Boho", "boho", 0, []string{"p-floral-dress", "p-beige-hat", "p-white-sneakers"}},
	{9, "Minimal Monochrome", "minimalist", 91, []string{"p-white-tee", "p-black-jeans", "p-white-sneakers"}},
	{10, "Cozy Knit", "casual,minimalist", 55, []string{"p-cream-knit", "p-grey-trousers", "p-brown-loafers"}},
	{11, "Statement Edge", "edgy", 38, []string{"p-black-hoodie", "p-red-joggers", "p-silver-chain"}},
	{12, "Empty Lookbook", "", 20, nil},
}

// SeedDemoData populates a small deterministic catalogue with two demo
// users. It does nothing when outfits already exist.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM outfits`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count outfits: %w", err)
	}
	if count > 0 {
		logging.Debug().Int("outfits", count).Msg("Catalogue already populated, skipping demo seed")
		return nil
	}

	logging.Info().Msg("Seeding database with demo catalogue...")

	byID := make(map[string]models.Product, len(demoProducts))
	for i := range demoProducts {
		p := demoProducts[i]
		if err := db.InsertProduct(ctx, &p); err != nil {
			return err
		}
		byID[p.ID] = p
	}

	for i, d := range demoOutfits {
		o := models.Outfit{
			ID:        d.id,
			Title:     d.title,
			Style:     d.style,
			Points:    d.points,
			CreatedAt: demoEpoch.Add(time.Duration(i) * time.Hour),
		}
		for _, pid := range d.products {
			o.Products = append(o.Products, byID[pid])
		}
		if err := db.InsertOutfit(ctx, &o); err != nil {
			return err
		}
	}

	users := []models.User{
		{
			ID:             DemoUserID,
			Name:           "Ava",
			Gender:         "female",
			PositiveStyles: []string{"casual", "minimalist"},
			NegativeStyles: []string{"formal"},
			PositiveBrands: []string{"Northline", "Basics Co"},
			NegativeBrands: []string{"Voltline"},
			PositiveColors: []string{"white", "black"},
			NegativeColors: []string{"red"},
		},
		{ID: DemoNewUserID, Name: "Noah"},
	}
	for i := range users {
		if err := db.UpsertUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	likeAt := demoEpoch.Add(48 * time.Hour)
	for i, outfitID := range []int64{1, 9, 7} {
		if err := db.LikeOutfit(ctx, DemoUserID, outfitID, likeAt.Add(time.Duration(i)*time.Minute)); err != nil {
			return err
		}
	}
	for i, productID := range []string{"p-white-tee", "p-white-sneakers", "p-denim-jacket", "p-cream-knit"} {
		if err := db.LikeProduct(ctx, DemoUserID, productID, likeAt.Add(time.Duration(i)*time.Minute)); err != nil {
			return err
		}
	}

	logging.Info().
		Int("products", len(demoProducts)).
		Int("outfits", len(demoOutfits)).
		Int("users", len(users)).
		Msg("Demo catalogue seeded")
	return nil
}
