// Package pagination provides a reusable pagination framework for slicing
// ordered article collections into fixed-size pages, plus the page-number
// window the list views render.
package pagination

import (
	"os"
	"strconv"
)

// DefaultPageSize is the fixed page size of the public article list.
const DefaultPageSize = 6

// Config holds pagination configuration settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=6, max=50
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: DefaultPageSize,
		MaxLimit:     50,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//
// Falls back to DefaultConfig() values if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", DefaultPageSize),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 50),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
