// Package repository defines the persistence interfaces the usecases depend
// on. Concrete implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"elbouchra-cms/internal/domain/entity"
)

type ArticleRepository interface {
	// List retrieves all articles ordered from newest to oldest.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListPaginated retrieves one page of articles ordered from newest to
	// oldest. Uses LIMIT and OFFSET for efficient pagination.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	// CountArticles returns the total number of articles in the database.
	// This is used for calculating pagination metadata (total pages, etc.).
	CountArticles(ctx context.Context) (int64, error)
	// Get retrieves an article by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// Search returns articles whose title or excerpt matches the keyword,
	// newest first.
	Search(ctx context.Context, keyword string) ([]*entity.Article, error)
	// Create persists a new article. The implementation assigns article.ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update rewrites the mutable fields of an existing article.
	// Returns entity.ErrNotFound if no row matches article.ID.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article by ID.
	// Returns entity.ErrNotFound if no row matches, so callers can report
	// the miss instead of treating the delete as a success.
	Delete(ctx context.Context, id string) error
}
