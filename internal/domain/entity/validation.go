package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for image URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateImageURL validates the format of a featured-image URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a
// valid host. The featured image is optional, so an empty string is accepted
// unchanged by the write path and never reaches this check.
// Returns a ValidationError if the URL is invalid.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "featuredImage", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "featuredImage",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "featuredImage", Message: "invalid URL format"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "featuredImage", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "featuredImage", Message: "URL must have a valid host"}
	}

	return nil
}
