// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/stylist/internal/metrics"
)

// queryBuilder helps construct SQL queries with dynamic filters.
// The base query must already contain a WHERE clause.
type queryBuilder struct {
	baseQuery string
	args      []interface{}
	filters   []string
}

// newQueryBuilder creates a new query builder with a base query.
func newQueryBuilder(baseQuery string, args ...interface{}) *queryBuilder {
	qb := &queryBuilder{
		baseQuery: baseQuery,
		args:      make([]interface{}, 0, 8),
		filters:   make([]string, 0, 4),
	}
	qb.args = append(qb.args, args...)
	return qb
}

// addFilter adds a custom filter condition
func (qb *queryBuilder) addFilter(condition string, args ...interface{}) *queryBuilder {
	qb.filters = append(qb.filters, condition)
	qb.args = append(qb.args, args...)
	return qb
}

// addStyleFilter matches rows whose lowercased column contains any of the
// comma-separated tokens. Blank tokens are ignored; no tokens adds nothing.
func (qb *queryBuilder) addStyleFilter(column, styles string) *queryBuilder {
	tokens := styleTokens(styles)
	if len(tokens) == 0 {
		return qb
	}
	conds := make([]string, len(tokens))
	for i, tok := range tokens {
		conds[i] = fmt.Sprintf("contains(lower(%s), ?)", column)
		qb.args = append(qb.args, tok)
	}
	qb.filters = append(qb.filters, "("+strings.Join(conds, " OR ")+")")
	return qb
}

// addPage appends LIMIT and OFFSET arguments.
func (qb *queryBuilder) addPage(limit, offset int) *queryBuilder {
	qb.args = append(qb.args, limit, offset)
	return qb
}

// build constructs the final query and returns it with args
func (qb *queryBuilder) build(suffix string) (string, []interface{}) {
	query := qb.baseQuery
	if len(qb.filters) > 0 {
		query += " AND " + strings.Join(qb.filters, " AND ")
	}
	if suffix != "" {
		query += " " + suffix
	}
	return query, qb.args
}

// styleTokens splits a comma-separated style list into lowercase tokens.
func styleTokens(styles string) []string {
	var tokens []string
	for _, tok := range strings.Split(styles, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// scanFunc is a function that scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan
// function. Duration and errors are recorded under operation.
func queryAndScan[T any](ctx context.Context, db *sql.DB, operation, query string, args []interface{}, scan scanFunc[T]) (results []T, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery(operation, time.Since(start), err) }()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results = make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// paging converts a 1-based page into LIMIT/OFFSET values.
func paging(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
