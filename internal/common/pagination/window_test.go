package pagination_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"elbouchra-cms/internal/common/pagination"
)

func TestNewWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    int
		totalPages int
		want       pagination.Window
	}{
		{
			name:       "no pages",
			current:    1,
			totalPages: 0,
			want:       pagination.Window{Pages: []int{}},
		},
		{
			name:       "fewer pages than window",
			current:    2,
			totalPages: 3,
			want:       pagination.Window{Pages: []int{1, 2, 3}},
		},
		{
			name:       "exactly window size",
			current:    3,
			totalPages: 5,
			want:       pagination.Window{Pages: []int{1, 2, 3, 4, 5}},
		},
		{
			name:       "centered in the middle",
			current:    10,
			totalPages: 20,
			want: pagination.Window{
				Pages:            []int{8, 9, 10, 11, 12},
				ShowFirst:        true,
				ShowLast:         true,
				LeadingEllipsis:  true,
				TrailingEllipsis: true,
			},
		},
		{
			name:       "clamped at the start",
			current:    1,
			totalPages: 20,
			want: pagination.Window{
				Pages:            []int{1, 2, 3, 4, 5},
				ShowLast:         true,
				TrailingEllipsis: true,
			},
		},
		{
			name:       "clamped at the end",
			current:    20,
			totalPages: 20,
			want: pagination.Window{
				Pages:           []int{16, 17, 18, 19, 20},
				ShowFirst:       true,
				LeadingEllipsis: true,
			},
		},
		{
			name:       "window touching the first page needs no ellipsis",
			current:    3,
			totalPages: 20,
			want: pagination.Window{
				Pages:            []int{1, 2, 3, 4, 5},
				ShowLast:         true,
				TrailingEllipsis: true,
			},
		},
		{
			name:       "window adjacent to first page skips leading ellipsis",
			current:    4,
			totalPages: 20,
			want: pagination.Window{
				Pages:            []int{2, 3, 4, 5, 6},
				ShowFirst:        true,
				ShowLast:         true,
				TrailingEllipsis: true,
			},
		},
		{
			name:       "current beyond total is clamped",
			current:    99,
			totalPages: 3,
			want:       pagination.Window{Pages: []int{1, 2, 3}},
		},
		{
			name:       "current below one is clamped",
			current:    -1,
			totalPages: 8,
			want: pagination.Window{
				Pages:            []int{1, 2, 3, 4, 5},
				ShowLast:         true,
				TrailingEllipsis: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := pagination.NewWindow(tt.current, tt.totalPages)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewWindow(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.totalPages, diff)
			}
		})
	}
}
