package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Returns Params with defaults if parameters are missing; present values are
// checked with Validate.
//
// Query parameters:
//   - page: Page number (must be a positive integer)
//   - limit: Items per page (must be between 1 and config.MaxLimit)
//
// Returns an error if parameters are present but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	defaults := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}
	params := defaults

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return defaults, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return defaults, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if err := params.Validate(config); err != nil {
		return defaults, fmt.Errorf("invalid query parameter: %w", err)
	}
	return params, nil
}
