// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
database_schema.go - Database Schema Management

Tables:
  - users: profile and the six stated preference lists, each stored as a
    JSON text array
  - products: catalogue products
  - outfits: curated outfits with a free-text, comma-separated style
  - outfit_products: ordered outfit membership; no key, since InsertOutfit
    deletes and re-inserts rows in one transaction
  - outfit_likes, product_likes: like history with timestamps

All statements are idempotent and run on every startup.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// createIndexes creates indexes for the like-history and membership lookups
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}

var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL DEFAULT '',
		gender VARCHAR NOT NULL DEFAULT '',
		positive_brands VARCHAR NOT NULL DEFAULT '[]',
		negative_brands VARCHAR NOT NULL DEFAULT '[]',
		positive_styles VARCHAR NOT NULL DEFAULT '[]',
		negative_styles VARCHAR NOT NULL DEFAULT '[]',
		positive_colors VARCHAR NOT NULL DEFAULT '[]',
		negative_colors VARCHAR NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		type VARCHAR NOT NULL DEFAULT '',
		title VARCHAR NOT NULL DEFAULT '',
		description VARCHAR NOT NULL DEFAULT '',
		brand VARCHAR NOT NULL DEFAULT '',
		price DOUBLE NOT NULL DEFAULT 0,
		link VARCHAR NOT NULL DEFAULT '',
		image_url VARCHAR NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS outfits (
		id BIGINT PRIMARY KEY,
		title VARCHAR NOT NULL DEFAULT '',
		description VARCHAR NOT NULL DEFAULT '',
		style VARCHAR NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		image_url VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfit_products (
		outfit_id BIGINT NOT NULL,
		product_id VARCHAR NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfit_likes (
		user_id VARCHAR NOT NULL,
		outfit_id BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, outfit_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_likes (
		user_id VARCHAR NOT NULL,
		product_id VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, product_id)
	)`,
}

var indexCreationQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_outfits_created ON outfits(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_outfit_products_outfit ON outfit_products(outfit_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_outfit_likes_user ON outfit_likes(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_product_likes_user ON product_likes(user_id, created_at)`,
}
