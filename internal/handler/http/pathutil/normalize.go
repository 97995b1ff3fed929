package pathutil

import (
	"regexp"
)

var articleIDPattern = regexp.MustCompile(`^/articles/[0-9a-fA-F-]{36}$`)

// NormalizePath collapses paths with identifiers into route patterns so that
// metric labels stay bounded.
func NormalizePath(path string) string {
	if articleIDPattern.MatchString(path) {
		return "/articles/:id"
	}
	return path
}
