// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package patterns

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStyleTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"Minimalist", []string{"minimalist"}},
		{"minimalist, Casual", []string{"minimalist", "casual"}},
		{"casual,,boho, ", []string{"casual", "boho"}},
		{"street,street", []string{"street", "street"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, StyleTokens(tt.style)); diff != "" {
			t.Errorf("StyleTokens(%q) mismatch (-want +got):\n%s", tt.style, diff)
		}
	}
}

func TestAnyInAndCountIn(t *testing.T) {
	t.Parallel()

	set := map[string]struct{}{"casual": {}, "boho": {}}
	tokens := []string{"casual", "street", "casual"}

	if !AnyIn(tokens, set) {
		t.Error("AnyIn() = false, want true")
	}
	if AnyIn([]string{"formal"}, set) {
		t.Error("AnyIn(formal) = true, want false")
	}
	if AnyIn(nil, set) {
		t.Error("AnyIn(nil) = true, want false")
	}
	if got := CountIn(tokens, set); got != 2 {
		t.Errorf("CountIn() = %d, want 2", got)
	}
}
