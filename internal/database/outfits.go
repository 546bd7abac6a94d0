// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/stylist/internal/models"
)

const productColumns = `p.id, p.type, p.title, p.description, p.brand, p.price, p.link, p.image_url`

const outfitColumns = `o.id, o.title, o.description, o.style, o.points, o.image_url, o.created_at`

// LikedOutfits returns a page of outfits the user liked, most recently liked
// first, with products attached in position order.
func (db *DB) LikedOutfits(ctx context.Context, userID string, page, pageSize int) ([]models.Outfit, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	limit, offset := paging(page, pageSize)
	query := `
		SELECT ` + outfitColumns + `, TRUE AS is_liked
		FROM outfit_likes l
		JOIN outfits o ON o.id = l.outfit_id
		WHERE l.user_id = ?
		ORDER BY l.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?`

	outfits, err := queryAndScan(ctx, db.conn, "liked_outfits", query, []interface{}{userID, limit, offset}, scanOutfit)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked outfits for user %s: %w", userID, err)
	}
	if err := db.attachProducts(ctx, outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// LikedProducts returns a page of products the user liked, most recently
// liked first.
func (db *DB) LikedProducts(ctx context.Context, userID string, page, pageSize int) ([]models.Product, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	limit, offset := paging(page, pageSize)
	query := `
		SELECT ` + productColumns + `
		FROM product_likes l
		JOIN products p ON p.id = l.product_id
		WHERE l.user_id = ?
		ORDER BY l.created_at DESC, p.id
		LIMIT ? OFFSET ?`

	products, err := queryAndScan(ctx, db.conn, "liked_products", query, []interface{}{userID, limit, offset}, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked products for user %s: %w", userID, err)
	}
	return products, nil
}

// Outfits returns a page of outfits, newest first, with products attached.
// q.Style restricts results to outfits whose style contains any of its
// comma-separated tokens, case-insensitively. With q.IncludeLikes set,
// IsLiked reflects q.UserID.
func (db *DB) Outfits(ctx context.Context, q models.OutfitQuery) ([]models.Outfit, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	limit, _ := paging(q.Page, q.PageSize)
	q.PageSize = limit

	var qb *queryBuilder
	if q.IncludeLikes && q.UserID != "" {
		qb = newQueryBuilder(`
		SELECT `+outfitColumns+`,
			EXISTS (SELECT 1 FROM outfit_likes l WHERE l.outfit_id = o.id AND l.user_id = ?) AS is_liked
		FROM outfits o
		WHERE 1=1`, q.UserID)
	} else {
		qb = newQueryBuilder(`
		SELECT ` + outfitColumns + `, FALSE AS is_liked
		FROM outfits o
		WHERE 1=1`)
	}
	qb.addStyleFilter("o.style", q.Style).addPage(limit, q.Offset())
	query, args := qb.build("ORDER BY o.created_at DESC, o.id DESC LIMIT ? OFFSET ?")

	outfits, err := queryAndScan(ctx, db.conn, "outfits", query, args, scanOutfit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outfits: %w", err)
	}
	if err := db.attachProducts(ctx, outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// attachProducts loads the products of every outfit in one query and
// assigns them in position order. Outfits without products get an empty
// slice.
func (db *DB) attachProducts(ctx context.Context, outfits []models.Outfit) error {
	if len(outfits) == 0 {
		return nil
	}

	ids := make([]interface{}, len(outfits))
	index := make(map[int64]int, len(outfits))
	for i := range outfits {
		ids[i] = outfits[i].ID
		index[outfits[i].ID] = i
		outfits[i].Products = []models.Product{}
	}

	query := `
		SELECT op.outfit_id, ` + productColumns + `
		FROM outfit_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.outfit_id IN (` + placeholders(len(ids)) + `)
		ORDER BY op.outfit_id, op.position`

	type member struct {
		outfitID int64
		product  models.Product
	}
	members, err := queryAndScan(ctx, db.conn, "outfit_products", query, ids, func(rows *sql.Rows) (member, error) {
		var m member
		err := rows.Scan(&m.outfitID,
			&m.product.ID, &m.product.Type, &m.product.Title, &m.product.Description,
			&m.product.Brand, &m.product.Price, &m.product.Link, &m.product.ImageURL)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to load outfit products: %w", err)
	}

	for _, m := range members {
		if i, ok := index[m.outfitID]; ok {
			outfits[i].Products = append(outfits[i].Products, m.product)
		}
	}
	return nil
}

func scanOutfit(rows *sql.Rows) (models.Outfit, error) {
	var o models.Outfit
	err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.Style, &o.Points, &o.ImageURL, &o.CreatedAt, &o.IsLiked)
	return o, err
}

func scanProduct(rows *sql.Rows) (models.Product, error) {
	var p models.Product
	err := rows.Scan(&p.ID, &p.Type, &p.Title, &p.Description, &p.Brand, &p.Price, &p.Link, &p.ImageURL)
	return p, err
}

// InsertProduct inserts or replaces a catalogue product.
func (db *DB) InsertProduct(ctx context.Context, p *models.Product) error {
	return db.exec(ctx, "insert_product", `
		INSERT OR REPLACE INTO products (id, type, title, description, brand, price, link, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Type, p.Title, p.Description, p.Brand, p.Price, p.Link, p.ImageURL)
}

// InsertOutfit inserts or replaces an outfit and its product membership.
// Products must already exist; their order in o.Products is kept.
func (db *DB) InsertOutfit(ctx context.Context, o *models.Outfit) (err error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // best-effort after failure
		}
	}()

	created := o.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO outfits (id, title, description, style, points, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Title, o.Description, o.Style, o.Points, o.ImageURL, created.UTC()); err != nil {
		return fmt.Errorf("failed to insert outfit %d: %w", o.ID, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM outfit_products WHERE outfit_id = ?`, o.ID); err != nil {
		return fmt.Errorf("failed to clear products of outfit %d: %w", o.ID, err)
	}
	for pos, p := range o.Products {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO outfit_products (outfit_id, product_id, position) VALUES (?, ?, ?)`,
			o.ID, p.ID, pos); err != nil {
			return fmt.Errorf("failed to link product %s to outfit %d: %w", p.ID, o.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outfit %d: %w", o.ID, err)
	}
	return nil
}
