// Package pathutil provides utilities for extracting and normalizing URL path segments.
package pathutil

import (
	"fmt"
	"strings"
)

// ExtractID extracts the trailing identifier from a URL path after the given prefix.
// It returns an error if the path has no identifier segment or contains extra segments.
func ExtractID(path, prefix string) (string, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", fmt.Errorf("path %q does not start with %q", path, prefix)
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", fmt.Errorf("missing identifier in path %q", path)
	}
	if strings.Contains(rest, "/") {
		return "", fmt.Errorf("unexpected extra path segments in %q", path)
	}
	return rest, nil
}
