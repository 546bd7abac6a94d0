// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package patterns extracts taste signals from free text and from a user's
// liked outfits and products.
//
// Color extraction uses plain substring containment against a fixed fashion
// palette. There is no stemming and no word-boundary check, so "tan" is
// found inside "instant". Callers depending on exact matches must filter
// the result themselves.
//
// Everything here is side-effect free and safe for concurrent use.
package patterns
