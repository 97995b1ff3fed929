package article

import (
	"net/http"
	"strings"
	"time"

	"elbouchra-cms/internal/common/pagination"
	"elbouchra-cms/internal/handler/http/respond"
	"elbouchra-cms/internal/i18n"
)

// langFromRequest resolves the display language from the lang query
// parameter, then the Accept-Language header, falling back to the default
// language for unknown codes.
func langFromRequest(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.Resolve(lang).Code
	}
	accept := r.Header.Get("Accept-Language")
	if first, _, _ := strings.Cut(accept, ","); first != "" {
		first, _, _ = strings.Cut(first, ";")
		code, _, _ := strings.Cut(strings.TrimSpace(first), "-")
		return i18n.Resolve(code).Code
	}
	return i18n.DefaultLanguage
}

// List handles GET /articles. It returns one page of article teasers,
// newest first, with pagination metadata for the page-number buttons.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, err := pagination.ParseQueryParams(r, h.pageConfig)
	if err != nil {
		pagination.RecordError("validation")
		pagination.RecordRequest(http.StatusBadRequest, params.Page)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ListPaginated(r.Context(), params, langFromRequest(r))
	if err != nil {
		pagination.RecordError("database")
		pagination.RecordRequest(http.StatusInternalServerError, params.Page)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", time.Since(start).Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toTeaserDTOs(result.Data), result.Pagination))
}
