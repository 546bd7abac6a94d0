// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package models

import "strings"

// User is a profile as supplied by the authentication/profile collaborator.
// Preference lists are free text and may contain duplicates or mixed case;
// membership checks must be case-insensitive.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Gender string `json:"gender,omitempty"`

	PositiveBrands []string `json:"positive_brands"`
	NegativeBrands []string `json:"negative_brands"`
	PositiveStyles []string `json:"positive_styles"`
	NegativeStyles []string `json:"negative_styles"`
	PositiveColors []string `json:"positive_colors"`
	NegativeColors []string `json:"negative_colors"`
}

// Preferences returns a deep copy of the user's preference lists.
func (u *User) Preferences() Preferences {
	return Preferences{
		PositiveBrands: cloneStrings(u.PositiveBrands),
		NegativeBrands: cloneStrings(u.NegativeBrands),
		PositiveStyles: cloneStrings(u.PositiveStyles),
		NegativeStyles: cloneStrings(u.NegativeStyles),
		PositiveColors: cloneStrings(u.PositiveColors),
		NegativeColors: cloneStrings(u.NegativeColors),
	}
}

// Preferences is a snapshot of a user's stated likes and dislikes.
type Preferences struct {
	PositiveBrands []string `json:"positive_brands"`
	NegativeBrands []string `json:"negative_brands"`
	PositiveStyles []string `json:"positive_styles"`
	NegativeStyles []string `json:"negative_styles"`
	PositiveColors []string `json:"positive_colors"`
	NegativeColors []string `json:"negative_colors"`
}

// LowerSet builds a lower-cased lookup set from a preference list.
// Blank entries are ignored.
func LowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
