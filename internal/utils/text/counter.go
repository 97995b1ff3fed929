// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for character counting and
// truncation used by the excerpt derivation pipeline.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including Arabic,
// accented French, emoji, and other Unicode characters by counting runes
// instead of bytes.
//
// Examples:
//
//	CountRunes("hello")    // returns 5 (ASCII text)
//	CountRunes("été")      // returns 3 (accented French)
//	CountRunes("مرحبا")    // returns 5 (Arabic text)
//	CountRunes("")         // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}

// TruncateRunes returns the first max runes of text. It never splits a
// multi-byte character because truncation happens on rune boundaries.
// If text has max runes or fewer, it is returned unchanged.
func TruncateRunes(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
