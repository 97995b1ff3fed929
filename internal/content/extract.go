// Package content implements the article content pipeline: HTML-to-text
// extraction, excerpt derivation, and sanitization of rich-text article
// bodies produced by the admin editor.
package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)

	// entityReplacer decodes the entities the editor toolbar is known to emit.
	// The parser path decodes entities natively; this covers the fallback pass.
	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
		"&hellip;", "…",
		"&mdash;", "—",
		"&ndash;", "–",
	)
)

// Text extracts plain text from author-controlled HTML.
// Script and style blocks are removed entirely (content included), entities
// are decoded, and runs of whitespace collapse to single spaces. Text nodes
// from adjacent elements are joined with a space so block boundaries never
// glue words together.
// It never returns an error: when the HTML cannot be parsed, it degrades to
// a regex stripping pass that still removes tags and decodes entities.
// Applied to already-plain text it is a no-op apart from whitespace collapsing.
func Text(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return stripFallback(raw)
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	for _, node := range doc.Nodes {
		collectText(node, &sb)
	}
	return collapseWhitespace(sb.String())
}

// collectText appends every text node under n, separated by spaces.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// stripFallback removes markup with regular expressions only. Whole
// script/style blocks go first so their bodies never leak into the text.
func stripFallback(raw string) string {
	out := scriptBlockRe.ReplaceAllString(raw, " ")
	out = styleBlockRe.ReplaceAllString(out, " ")
	out = tagRe.ReplaceAllString(out, " ")
	out = entityReplacer.Replace(out)
	return collapseWhitespace(out)
}

// collapseWhitespace reduces all whitespace runs (including NBSP and
// newlines) to single spaces and trims the result.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
