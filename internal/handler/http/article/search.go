package article

import (
	"net/http"
	"strings"

	"elbouchra-cms/internal/handler/http/respond"
)

// Search handles GET /articles/search?q=keyword. It matches article titles
// and excerpts and returns teasers in the requested language.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	kw := strings.TrimSpace(r.URL.Query().Get("q"))
	if kw == "" {
		respond.ErrorMessage(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	teasers, err := h.service.Search(r.Context(), kw, langFromRequest(r))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string][]TeaserDTO{"data": toTeaserDTOs(teasers)})
}
