package pathutil_test

import (
	"testing"

	"elbouchra-cms/internal/handler/http/pathutil"
)

func TestExtractID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid article id",
			path:   "/articles/0f1e2d3c-4b5a-4678-89ab-cdef01234567",
			prefix: "/articles/",
			want:   "0f1e2d3c-4b5a-4678-89ab-cdef01234567",
		},
		{
			name:   "trailing slash",
			path:   "/articles/abc/",
			prefix: "/articles/",
			want:   "abc",
		},
		{
			name:    "missing id",
			path:    "/articles/",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "extra segments",
			path:    "/articles/abc/comments",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "wrong prefix",
			path:    "/media/abc",
			prefix:  "/articles/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pathutil.ExtractID(tt.path, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractID(%q, %q) error = %v, wantErr %v", tt.path, tt.prefix, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractID(%q, %q) = %q, want %q", tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "article detail",
			path: "/articles/0f1e2d3c-4b5a-4678-89ab-cdef01234567",
			want: "/articles/:id",
		},
		{
			name: "article list",
			path: "/articles",
			want: "/articles",
		},
		{
			name: "health",
			path: "/health",
			want: "/health",
		},
		{
			name: "short id left alone",
			path: "/articles/42",
			want: "/articles/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pathutil.NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
