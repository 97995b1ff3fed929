package content

import (
	"elbouchra-cms/internal/utils/text"
)

const (
	// MaxExcerptLength is the rune budget for excerpts derived on the write
	// path when the editor leaves the excerpt field blank.
	MaxExcerptLength = 200

	// ListExcerptLength is the rune budget for teasers derived on the read
	// path for list views.
	ListExcerptLength = 150

	// cleanBreakWindow is how far back from the truncation point a sentence
	// boundary or space is still considered a clean break.
	cleanBreakWindow = 30
)

// Excerpt produces a plain-text teaser from HTML content.
// The content is stripped via Text, then truncated to at most max runes:
//
//   - text within budget is returned unchanged, no ellipsis;
//   - if sentence-ending punctuation (. ! ?) falls within the last
//     cleanBreakWindow runes of the cut, the excerpt ends there with the
//     punctuation kept and no ellipsis appended;
//   - otherwise, if a space falls within that window, the excerpt breaks on
//     the word boundary and "..." is appended;
//   - otherwise it cuts exactly at max runes and appends "...".
//
// All lengths are rune counts, so multi-byte characters are never split.
func Excerpt(rawHTML string, max int) string {
	cleaned := Text(rawHTML)
	if max <= 0 || text.CountRunes(cleaned) <= max {
		return cleaned
	}

	window := []rune(text.TruncateRunes(cleaned, max))

	floor := max - cleanBreakWindow
	if floor < 0 {
		floor = 0
	}

	// Prefer a sentence boundary: cut after the punctuation, no ellipsis.
	for i := len(window) - 1; i >= floor; i-- {
		switch window[i] {
		case '.', '!', '?':
			return string(window[:i+1])
		}
	}

	// Fall back to a word boundary.
	for i := len(window) - 1; i >= floor; i-- {
		if window[i] == ' ' {
			return string(window[:i]) + "..."
		}
	}

	return string(window) + "..."
}
