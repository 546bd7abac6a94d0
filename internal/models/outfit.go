// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package models

import "time"

// Outfit is a previously generated outfit together with its products.
type Outfit struct {
	ID          int64  `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Style is a comma-joined free-text tag string. May be empty.
	Style string `json:"style"`

	// Points is a popularity/quality scalar, nominally 0-100. Zero means unset.
	Points int `json:"points"`

	ImageURL string    `json:"image_url,omitempty"`
	Products []Product `json:"products"`

	// IsLiked is relative to the user the outfit was fetched for.
	IsLiked bool `json:"is_liked"`

	CreatedAt time.Time `json:"created_at"`
}

// Product is a single catalogue item.
type Product struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`

	// Price is zero when unknown. Only positive prices carry signal.
	Price float64 `json:"price,omitempty"`

	Link     string `json:"link,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// HasPrice reports whether the product carries a usable price.
func (p *Product) HasPrice() bool {
	return p.Price > 0
}

// OutfitQuery selects a page of outfits for one user.
type OutfitQuery struct {
	UserID   string
	Page     int
	PageSize int

	// Style is a comma-separated token list; an outfit matches when any
	// token appears case-insensitively inside its style string. Empty
	// disables style filtering.
	Style string

	// IncludeLikes populates Outfit.IsLiked for UserID.
	IncludeLikes bool
}

// Offset returns the row offset for the query's page (pages are 1-based).
func (q *OutfitQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}
