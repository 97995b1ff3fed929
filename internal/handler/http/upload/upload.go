// Package upload provides the admin endpoint for uploading article images.
package upload

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"elbouchra-cms/internal/handler/http/auth"
	"elbouchra-cms/internal/handler/http/respond"
	"elbouchra-cms/internal/infra/storage"
)

var uploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Total number of media upload attempts",
	},
	[]string{"status"},
)

// maxUploadSize caps a single image upload at 10 MiB.
const maxUploadSize = 10 << 20

// allowedTypes lists the image content types accepted by the editor.
var allowedTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

// Handler accepts multipart image uploads and stores them through the
// configured uploader.
type Handler struct {
	uploader storage.Uploader
}

// NewHandler creates an upload handler backed by the given uploader.
func NewHandler(uploader storage.Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// Register mounts the upload route. Uploads are admin only.
func (h *Handler) Register(mux *http.ServeMux, jwtSecret []byte) {
	mux.Handle("POST /uploads", auth.RequireAdmin(jwtSecret, h))
}

type uploadResponse struct {
	URL string `json:"url"`
}

// ServeHTTP handles POST /uploads with a multipart form field named "file".
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "form field file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedTypes[strings.ToLower(contentType)]; !ok {
		uploadsTotal.WithLabelValues("rejected").Inc()
		respond.ErrorMessage(w, http.StatusUnsupportedMediaType, "unsupported image type")
		return
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		uploadsTotal.WithLabelValues("error").Inc()
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	uploadsTotal.WithLabelValues("ok").Inc()
	respond.JSON(w, http.StatusCreated, uploadResponse{URL: url})
}
