// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"elbouchra-cms/internal/domain/entity"
	"elbouchra-cms/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, excerpt, featured_image, created_at, created_by
FROM articles
ORDER BY created_seq DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// ListPaginated retrieves one page of articles. Uses LIMIT and OFFSET for
// efficient pagination.
func (repo *ArticleRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, excerpt, featured_image, created_at, created_by
FROM articles
ORDER BY created_seq DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// CountArticles returns the total number of articles in the database.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT id, title, content, excerpt, featured_image, created_at, created_by
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content, &article.Excerpt,
			&article.FeaturedImage, &article.CreatedAt, &article.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, excerpt, featured_image, created_at, created_by
FROM articles
WHERE title   ILIKE $1
    OR excerpt ILIKE $1
ORDER BY created_seq DESC`
	param := "%" + keyword + "%"
	rows, err := repo.db.QueryContext(ctx, query, param)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// Create persists a new article, assigning a fresh UUID as its ID.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (id, title, content, excerpt, featured_image, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	article.ID = uuid.NewString()
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Excerpt,
		article.FeaturedImage, article.CreatedAt, article.CreatedBy,
	)
	if err != nil {
		article.ID = ""
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields. created_at and created_by never change
// after creation.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title          = $1,
       content        = $2,
       excerpt        = $3,
       featured_image = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.Excerpt,
		article.FeaturedImage, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var article entity.Article
	if err := rows.Scan(&article.ID, &article.Title, &article.Content,
		&article.Excerpt, &article.FeaturedImage, &article.CreatedAt,
		&article.CreatedBy); err != nil {
		return nil, fmt.Errorf("Scan: %w", err)
	}
	return &article, nil
}
