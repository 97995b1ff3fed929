package article

import (
	"net/http"

	"elbouchra-cms/internal/common/pagination"
	"elbouchra-cms/internal/handler/http/auth"
	artUC "elbouchra-cms/internal/usecase/article"
)

// Handler bundles the article endpoints around the article service.
type Handler struct {
	service    *artUC.Service
	pageConfig pagination.Config
}

// NewHandler creates an article handler with the given service and
// pagination settings.
func NewHandler(service *artUC.Service, pageConfig pagination.Config) *Handler {
	return &Handler{service: service, pageConfig: pageConfig}
}

// Register mounts the article routes. Read endpoints are public; write
// endpoints require an admin token signed with jwtSecret.
func (h *Handler) Register(mux *http.ServeMux, jwtSecret []byte) {
	mux.HandleFunc("GET /articles", h.List)
	mux.HandleFunc("GET /articles/search", h.Search)
	mux.HandleFunc("GET /articles/{id}", h.Get)

	mux.Handle("POST /articles", auth.RequireAdmin(jwtSecret, http.HandlerFunc(h.Create)))
	mux.Handle("PUT /articles/{id}", auth.RequireAdmin(jwtSecret, http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /articles/{id}", auth.RequireAdmin(jwtSecret, http.HandlerFunc(h.Delete)))
}
