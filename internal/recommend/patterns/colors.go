// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package patterns

import "strings"

// palette is the fixed list of recognized fashion colors, in match order.
var palette = [...]string{
	"black", "white", "gray", "grey", "navy", "blue", "red", "pink",
	"green", "yellow", "orange", "purple", "brown", "beige", "tan",
	"cream", "gold", "silver", "maroon", "olive", "teal", "coral",
	"lavender", "mint", "burgundy", "khaki", "denim",
}

// Palette returns a copy of the recognized colors in match order.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette[:])
	return out
}

// ExtractColors returns every palette color contained in text, in palette
// order. Each color appears at most once per call. text is expected to be
// lower-cased already; it is not normalized here.
func ExtractColors(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, color := range palette {
		if strings.Contains(text, color) {
			found = append(found, color)
		}
	}
	return found
}

// ProductColorSet returns the distinct colors found in a product's title
// and description.
func ProductColorSet(title, description string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range ExtractColors(strings.ToLower(title)) {
		set[c] = struct{}{}
	}
	for _, c := range ExtractColors(strings.ToLower(description)) {
		set[c] = struct{}{}
	}
	return set
}
