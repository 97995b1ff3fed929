package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// LocalUploader writes uploads into a directory served as static files.
// Intended for development and single-host deployments.
type LocalUploader struct {
	dir     string
	baseURL string // public URL prefix, e.g. "http://localhost:8080/media"
	now     func() time.Time
}

func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: baseURL, now: time.Now}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := ObjectKey(u.now(), filename)
	path := filepath.Join(u.dir, key)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", key, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", key, err)
	}

	return u.baseURL + "/" + url.PathEscape(key), nil
}
