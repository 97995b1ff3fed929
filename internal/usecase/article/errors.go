// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying
// articles, including content sanitization, excerpt derivation and validation,
// and delegates persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is typically returned when attempting to retrieve, update or
	// delete an article that does not exist in the repository.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs are UUID strings.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
