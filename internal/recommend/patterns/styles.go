// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package patterns

import "strings"

// StyleTokens splits a comma-joined style string into trimmed, lower-cased
// tokens. Empty tokens are dropped, so "casual,,boho" yields two tokens and
// an empty style yields none.
func StyleTokens(style string) []string {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	parts := strings.Split(style, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// AnyIn reports whether any token is present in set.
func AnyIn(tokens []string, set map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// CountIn returns how many tokens (with repetition) are present in set.
func CountIn(tokens []string, set map[string]struct{}) int {
	n := 0
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
