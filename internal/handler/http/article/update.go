package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"elbouchra-cms/internal/domain/entity"
	"elbouchra-cms/internal/handler/http/pathutil"
	"elbouchra-cms/internal/handler/http/respond"
	artUC "elbouchra-cms/internal/usecase/article"
)

// updateRequest carries a partial article update. Absent fields are left
// untouched.
type updateRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featured_image"`
}

// Update handles PUT /articles/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid article id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	art, err := h.service.Update(r.Context(), artUC.UpdateInput{
		ID:            id,
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.ErrorMessage(w, http.StatusBadRequest, "invalid article id")
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.ErrorMessage(w, http.StatusNotFound, "article not found")
		case errors.As(err, &vErr):
			respond.Error(w, http.StatusBadRequest, vErr)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
