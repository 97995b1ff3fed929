package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"elbouchra-cms/internal/domain/entity"
	"elbouchra-cms/internal/handler/http/auth"
	"elbouchra-cms/internal/handler/http/respond"
	artUC "elbouchra-cms/internal/usecase/article"
)

type createRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Lang          string `json:"lang"`
}

// Create handles POST /articles. The authenticated admin is recorded as the
// author.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = langFromRequest(r)
	}
	in := artUC.CreateInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Lang:          lang,
	}
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		in.CreatedBy = identity.Username
	}

	art, err := h.service.Create(r.Context(), in)
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, vErr)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(art))
}
