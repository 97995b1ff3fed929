package entity_test

import (
	"errors"
	"strings"
	"testing"

	"elbouchra-cms/internal/domain/entity"
)

func TestValidateImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rawURL  string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			rawURL:  "https://example.com/images/planting.jpg",
			wantErr: false,
		},
		{
			name:    "valid http URL",
			rawURL:  "http://example.com/logo.png",
			wantErr: false,
		},
		{
			name:    "empty URL",
			rawURL:  "",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			rawURL:  "ftp://example.com/file.jpg",
			wantErr: true,
		},
		{
			name:    "javascript scheme",
			rawURL:  "javascript:alert(1)",
			wantErr: true,
		},
		{
			name:    "missing host",
			rawURL:  "https://",
			wantErr: true,
		},
		{
			name:    "too long",
			rawURL:  "https://example.com/" + strings.Repeat("a", 2100),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateImageURL(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateImageURL(%q) err=%v, wantErr=%v", tt.rawURL, err, tt.wantErr)
			}
			if err != nil {
				var vErr *entity.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected *entity.ValidationError, got %T", err)
				}
				if vErr.Field != "featuredImage" {
					t.Errorf("field = %q, want featuredImage", vErr.Field)
				}
			}
		})
	}
}
