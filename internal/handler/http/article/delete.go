package article

import (
	"errors"
	"net/http"

	"elbouchra-cms/internal/handler/http/pathutil"
	"elbouchra-cms/internal/handler/http/respond"
	artUC "elbouchra-cms/internal/usecase/article"
)

// Delete handles DELETE /articles/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.ErrorMessage(w, http.StatusBadRequest, "invalid article id")
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.ErrorMessage(w, http.StatusNotFound, "article not found")
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
