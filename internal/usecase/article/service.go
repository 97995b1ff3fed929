package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"elbouchra-cms/internal/common/pagination"
	"elbouchra-cms/internal/content"
	"elbouchra-cms/internal/domain/entity"
	"elbouchra-cms/internal/i18n"
	"elbouchra-cms/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title         string
	Content       string // raw editor HTML
	Excerpt       string // optional plain text; derived from Content when blank
	FeaturedImage string
	Lang          string // language used to render the publication date
	CreatedBy     string // falls back to entity.DefaultAuthor when empty
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated. CreatedAt and CreatedBy are set
// at creation and never change.
type UpdateInput struct {
	ID            string
	Title         *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
}

// Teaser is the compact article projection the list and search views render.
// Text fields are display-ready: missing values are already replaced with
// localized fallbacks.
type Teaser struct {
	ID            string
	Title         string
	Excerpt       string
	FeaturedImage string
	CreatedAt     string
	CreatedBy     string
}

// Service provides article management use cases.
// It owns the write-path content pipeline (sanitize, extract, derive excerpt)
// and delegates persistence to the repository.
type Service struct {
	Repo      repository.ArticleRepository
	Sanitizer *content.Sanitizer
	Messages  *i18n.Store

	// Now is the clock used to stamp publication dates. Defaults to time.Now.
	Now func() time.Time
}

// PaginatedResult represents one page of article teasers plus pagination
// metadata.
type PaginatedResult struct {
	Data       []Teaser
	Pagination pagination.Metadata
}

// List retrieves all articles from the repository, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListPaginated retrieves one page of article teasers in the given language.
// It calculates the appropriate offset, retrieves the data and total count,
// and returns a PaginatedResult with both data and metadata, including the
// page-number window for the navigation buttons.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params, lang string) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListPaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles paginated: %w", err)
	}

	totalPages := pagination.CalculateTotalPages(total, params.Limit)

	teasers := make([]Teaser, 0, len(articles))
	for _, art := range articles {
		teasers = append(teasers, s.teaser(art, lang))
	}

	return &PaginatedResult{
		Data: teasers,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: totalPages,
			Window:     pagination.NewWindow(params.Page, totalPages),
		},
	}, nil
}

// Get retrieves a single article by its ID. The content is passed through
// the sanitizer so rows written before a policy change still render safely.
// Returns ErrInvalidArticleID if the ID is not a UUID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	view := *art
	view.Content = s.Sanitizer.Sanitize(view.Content)
	return &view, nil
}

// Search finds articles matching the given keyword and returns them as
// teasers in the given language. The search matches article titles and
// excerpts.
func (s *Service) Search(ctx context.Context, kw, lang string) ([]Teaser, error) {
	articles, err := s.Repo.Search(ctx, kw)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	teasers := make([]Teaser, 0, len(articles))
	for _, art := range articles {
		teasers = append(teasers, s.teaser(art, lang))
	}
	return teasers, nil
}

// Create creates a new article with the provided input.
// The content is sanitized, the excerpt taken from the input or derived from
// the sanitized content, and the publication date rendered once in the
// requested language.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	clean := s.Sanitizer.Sanitize(in.Content)
	if content.Text(clean) == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}

	if in.FeaturedImage != "" {
		if err := entity.ValidateImageURL(in.FeaturedImage); err != nil {
			return nil, fmt.Errorf("validate featured image: %w", err)
		}
	}

	createdBy := strings.TrimSpace(in.CreatedBy)
	if createdBy == "" {
		createdBy = entity.DefaultAuthor
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = content.Excerpt(clean, content.MaxExcerptLength)
	} else {
		excerpt = content.Excerpt(excerpt, content.MaxExcerptLength)
	}

	art := &entity.Article{
		Title:         title,
		Content:       clean,
		Excerpt:       excerpt,
		FeaturedImage: in.FeaturedImage,
		CreatedAt:     i18n.FormatDate(s.now(), in.Lang),
		CreatedBy:     createdBy,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input are updated; a content change re-runs the
// sanitizer and re-derives the excerpt.
// Returns ErrInvalidArticleID if the ID is not a UUID.
// Returns ErrArticleNotFound if the article does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if uuid.Validate(in.ID) != nil {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = title
	}
	if in.Content != nil {
		clean := s.Sanitizer.Sanitize(*in.Content)
		if content.Text(clean) == "" {
			return nil, &entity.ValidationError{Field: "content", Message: "cannot be empty"}
		}
		art.Content = clean
		if in.Excerpt == nil {
			art.Excerpt = content.Excerpt(clean, content.MaxExcerptLength)
		}
	}
	if in.Excerpt != nil {
		if excerpt := strings.TrimSpace(*in.Excerpt); excerpt != "" {
			art.Excerpt = content.Excerpt(excerpt, content.MaxExcerptLength)
		} else {
			art.Excerpt = content.Excerpt(art.Content, content.MaxExcerptLength)
		}
	}
	if in.FeaturedImage != nil {
		if *in.FeaturedImage != "" {
			if err := entity.ValidateImageURL(*in.FeaturedImage); err != nil {
				return nil, fmt.Errorf("validate featured image: %w", err)
			}
		}
		art.FeaturedImage = *in.FeaturedImage
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID. The repository reports whether a row
// was actually removed, so a miss surfaces as ErrArticleNotFound instead of
// a silent success.
func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// teaser projects an article into its list representation. The stored
// excerpt is the list text, truncated to the list budget; it is derived
// from the content only when blank. Missing fields get localized fallbacks.
func (s *Service) teaser(art *entity.Article, lang string) Teaser {
	excerpt := strings.TrimSpace(art.Excerpt)
	if excerpt != "" {
		excerpt = content.Excerpt(excerpt, content.ListExcerptLength)
	} else {
		excerpt = content.Excerpt(art.Content, content.ListExcerptLength)
	}

	t := Teaser{
		ID:            art.ID,
		Title:         art.Title,
		Excerpt:       excerpt,
		FeaturedImage: art.FeaturedImage,
		CreatedAt:     art.CreatedAt,
		CreatedBy:     art.CreatedBy,
	}
	if t.Title == "" {
		t.Title = s.Messages.T(lang, "articles.untitled")
	}
	if t.Excerpt == "" {
		t.Excerpt = s.Messages.T(lang, "articles.placeholder")
	}
	if t.CreatedAt == "" {
		t.CreatedAt = s.Messages.T(lang, "articles.recent")
	}
	if t.CreatedBy == "" {
		t.CreatedBy = entity.DefaultAuthor
	}
	return t
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
