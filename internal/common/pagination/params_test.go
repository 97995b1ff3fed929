package pagination_test

import (
	"net/http/httptest"
	"testing"

	"elbouchra-cms/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name    string
		url     string
		want    pagination.Params
		wantErr bool
	}{
		{
			name: "no parameters uses defaults",
			url:  "/articles",
			want: pagination.Params{Page: 1, Limit: 6},
		},
		{
			name: "explicit page",
			url:  "/articles?page=3",
			want: pagination.Params{Page: 3, Limit: 6},
		},
		{
			name: "explicit page and limit",
			url:  "/articles?page=2&limit=12",
			want: pagination.Params{Page: 2, Limit: 12},
		},
		{
			name:    "page zero rejected",
			url:     "/articles?page=0",
			wantErr: true,
		},
		{
			name:    "negative page rejected",
			url:     "/articles?page=-1",
			wantErr: true,
		},
		{
			name:    "non-numeric page rejected",
			url:     "/articles?page=abc",
			wantErr: true,
		},
		{
			name:    "limit above max rejected",
			url:     "/articles?limit=500",
			wantErr: true,
		},
		{
			name:    "limit zero rejected",
			url:     "/articles?limit=0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := pagination.ParseQueryParams(r, config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQueryParams(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name    string
		params  pagination.Params
		wantErr bool
	}{
		{
			name:   "valid values",
			params: pagination.Params{Page: 4, Limit: 12},
		},
		{
			name:    "page zero",
			params:  pagination.Params{Page: 0, Limit: 6},
			wantErr: true,
		},
		{
			name:    "limit zero",
			params:  pagination.Params{Page: 1, Limit: 0},
			wantErr: true,
		},
		{
			name:    "limit over max",
			params:  pagination.Params{Page: 1, Limit: 200},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.params, err, tt.wantErr)
			}
		})
	}
}
