// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/models"
)

// GetUser returns the user with the given ID and their stated preferences.
// Returns ErrUserNotFound when no row exists.
func (db *DB) GetUser(ctx context.Context, id string) (user *models.User, err error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		// a missing user is an answer, not a query failure
		recorded := err
		if errors.Is(err, ErrUserNotFound) {
			recorded = nil
		}
		metrics.RecordDBQuery("get_user", time.Since(start), recorded)
	}()

	query := `
		SELECT id, name, gender,
			positive_brands, negative_brands,
			positive_styles, negative_styles,
			positive_colors, negative_colors
		FROM users
		WHERE id = ?`

	var u models.User
	var posBrands, negBrands, posStyles, negStyles, posColors, negColors string
	err = db.conn.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Gender,
		&posBrands, &negBrands,
		&posStyles, &negStyles,
		&posColors, &negColors,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	lists := []struct {
		raw  string
		dest *[]string
		name string
	}{
		{posBrands, &u.PositiveBrands, "positive_brands"},
		{negBrands, &u.NegativeBrands, "negative_brands"},
		{posStyles, &u.PositiveStyles, "positive_styles"},
		{negStyles, &u.NegativeStyles, "negative_styles"},
		{posColors, &u.PositiveColors, "positive_colors"},
		{negColors, &u.NegativeColors, "negative_colors"},
	}
	for _, l := range lists {
		if *l.dest, err = decodeList(l.raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s for user %s: %w", l.name, id, err)
		}
	}

	return &u, nil
}

// UpsertUser inserts the user or replaces an existing row with the same ID.
func (db *DB) UpsertUser(ctx context.Context, u *models.User) error {
	encoded := make([]string, 0, 6)
	for _, list := range [][]string{
		u.PositiveBrands, u.NegativeBrands,
		u.PositiveStyles, u.NegativeStyles,
		u.PositiveColors, u.NegativeColors,
	} {
		s, err := encodeList(list)
		if err != nil {
			return fmt.Errorf("failed to encode preferences for user %s: %w", u.ID, err)
		}
		encoded = append(encoded, s)
	}

	query := `
		INSERT OR REPLACE INTO users (
			id, name, gender,
			positive_brands, negative_brands,
			positive_styles, negative_styles,
			positive_colors, negative_colors
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return db.exec(ctx, "upsert_user", query,
		u.ID, u.Name, u.Gender,
		encoded[0], encoded[1], encoded[2], encoded[3], encoded[4], encoded[5],
	)
}

// LikeOutfit records that userID liked outfitID at the given time.
// Liking again moves the like to the new time.
func (db *DB) LikeOutfit(ctx context.Context, userID string, outfitID int64, at time.Time) error {
	return db.exec(ctx, "like_outfit",
		`INSERT OR REPLACE INTO outfit_likes (user_id, outfit_id, created_at) VALUES (?, ?, ?)`,
		userID, outfitID, at.UTC())
}

// LikeProduct records that userID liked productID at the given time.
func (db *DB) LikeProduct(ctx context.Context, userID, productID string, at time.Time) error {
	return db.exec(ctx, "like_product",
		`INSERT OR REPLACE INTO product_likes (user_id, product_id, created_at) VALUES (?, ?, ?)`,
		userID, productID, at.UTC())
}

// exec runs a write statement under the query timeout and records it.
func (db *DB) exec(ctx context.Context, operation, query string, args ...interface{}) (err error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery(operation, time.Since(start), err) }()

	if _, err = db.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

// encodeList stores a preference list as a JSON array. nil becomes [].
func encodeList(list []string) (string, error) {
	if list == nil {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList parses a JSON text array. Empty input yields an empty list.
func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	out := []string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
