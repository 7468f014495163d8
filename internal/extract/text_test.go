// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestJoinRow_SortsByXAndSpacesGaps(t *testing.T) {
	// Elements arrive out of order; a wide gap separates the two words.
	elements := []pdf.Text{
		{S: "world", X: 100, W: 30, FontSize: 10},
		{S: "hel", X: 10, W: 15, FontSize: 10},
		{S: "lo", X: 25, W: 10, FontSize: 10},
	}

	if got := joinRow(elements); got != "hello world" {
		t.Errorf("joinRow = %q, want %q", got, "hello world")
	}
}

func TestJoinRow_NoSpaceForAdjacentGlyphs(t *testing.T) {
	elements := []pdf.Text{
		{S: "a", X: 10, W: 5, FontSize: 10},
		{S: "b", X: 15.5, W: 5, FontSize: 10},
	}
	if got := joinRow(elements); got != "ab" {
		t.Errorf("joinRow = %q, want %q", got, "ab")
	}
}

func TestJoinRow_ZeroFontSizeUsesDefault(t *testing.T) {
	// Gap of 5 exceeds the threshold even with the fallback font size.
	elements := []pdf.Text{
		{S: "a", X: 10, W: 5},
		{S: "b", X: 20, W: 5},
	}
	if got := joinRow(elements); got != "a b" {
		t.Errorf("joinRow = %q, want %q", got, "a b")
	}
}

func TestAverageY(t *testing.T) {
	elements := []pdf.Text{{Y: 10}, {Y: 20}, {Y: 30}}
	if got := averageY(elements); got != 20 {
		t.Errorf("averageY = %v, want 20", got)
	}
	if got := averageY(nil); got != 0 {
		t.Errorf("averageY(nil) = %v, want 0", got)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b  c", "a b c"},
		{"trims lines", "  hello  \n  world  ", "hello\nworld"},
		{"drops blank lines", "a\n\n\n\nb", "a\nb"},
		{"tabs become spaces", "a\tb", "a b"},
		{"empty input", "   \n  \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.in); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
