package text_test

import (
	"testing"

	"elbouchra-cms/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "hello", want: 5},
		{name: "accented french", in: "été", want: 3},
		{name: "arabic", in: "مرحبا", want: 5},
		{name: "mixed", in: "salam سلام", want: 10},
		{name: "empty", in: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.in); got != tt.want {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max", in: "bonjour", max: 10, want: "bonjour"},
		{name: "exact length", in: "bonjour", max: 7, want: "bonjour"},
		{name: "truncated ascii", in: "bonjour", max: 3, want: "bon"},
		{name: "truncated arabic keeps rune boundary", in: "مرحبا بالعالم", max: 5, want: "مرحبا"},
		{name: "zero max", in: "bonjour", max: 0, want: ""},
		{name: "negative max", in: "bonjour", max: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
