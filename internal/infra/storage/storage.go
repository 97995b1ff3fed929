// Package storage stores uploaded media files (featured images) and returns
// the public URL the article records reference. Two backends exist: a local
// directory for development and S3-compatible object storage for production.
package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Uploader persists an uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectKey builds a storage key for an uploaded file. The nanosecond
// timestamp prefix keeps keys unique even for identical filenames uploaded
// in quick succession.
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d_%s", now.UnixNano(), sanitizeFilename(filename))
}

// sanitizeFilename strips path components and replaces characters that are
// unsafe in object keys or URLs.
func sanitizeFilename(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	filename = unsafeFilenameChars.ReplaceAllString(filename, "-")
	filename = strings.Trim(filename, "-.")
	if filename == "" {
		filename = "upload"
	}
	return filename
}
