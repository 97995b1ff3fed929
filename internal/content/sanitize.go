package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans article HTML before it is rendered on the detail view.
// Authorship is admin-gated, so content is treated as trusted-author HTML,
// but the allow-list policy still removes script/style blocks and event
// attributes to close the stored-markup injection risk.
//
// The policy mirrors the admin editor toolbar: headings, inline styles,
// lists, alignment classes, links, images, blockquote, and code block.
// Sanitize is idempotent and safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the allow-list policy for editor-produced HTML.
//   - allowed elements: h1-h6, p, br, span, strong, em, u, s, ul, ol, li,
//     blockquote, pre, code, a, img
//   - a: http/https href only, target="_blank" and rel="noreferrer noopener" forced
//   - img: src restricted to https URLs, alt allowed
//   - class: restricted to ql-* classes the editor emits (alignment, indent)
//   - script, style, iframe, and all on* event attributes are dropped
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "span",
		"strong", "em", "u", "s",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
	)

	// Editor alignment/indent classes only.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^(ql-[a-z-]+ ?)+$`)).Globally()

	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	// Images must load over https; plain links may still point at http sites.
	p.AllowAttrs("src").Matching(regexp.MustCompile(`^https://`)).OnElements("img")
	p.AllowAttrs("alt").OnElements("img")
	p.AllowURLSchemes("http", "https")

	return &Sanitizer{policy: p}
}

// Sanitize returns the HTML with disallowed markup removed.
// An empty input yields an empty string.
func (s *Sanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}
