// Package article provides HTTP handlers for the article endpoints.
package article

import (
	"elbouchra-cms/internal/domain/entity"
	artUC "elbouchra-cms/internal/usecase/article"
)

// DTO is the full article representation returned by the detail and write
// endpoints.
type DTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image,omitempty"`
	CreatedAt     string `json:"created_at"`
	CreatedBy     string `json:"created_by"`
}

// TeaserDTO is the compact representation used by the list and search
// endpoints.
type TeaserDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image,omitempty"`
	CreatedAt     string `json:"created_at"`
	CreatedBy     string `json:"created_by"`
}

func toDTO(art *entity.Article) DTO {
	return DTO{
		ID:            art.ID,
		Title:         art.Title,
		Content:       art.Content,
		Excerpt:       art.Excerpt,
		FeaturedImage: art.FeaturedImage,
		CreatedAt:     art.CreatedAt,
		CreatedBy:     art.CreatedBy,
	}
}

func toTeaserDTO(t artUC.Teaser) TeaserDTO {
	return TeaserDTO{
		ID:            t.ID,
		Title:         t.Title,
		Excerpt:       t.Excerpt,
		FeaturedImage: t.FeaturedImage,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

func toTeaserDTOs(teasers []artUC.Teaser) []TeaserDTO {
	dtos := make([]TeaserDTO, 0, len(teasers))
	for _, t := range teasers {
		dtos = append(dtos, toTeaserDTO(t))
	}
	return dtos
}
