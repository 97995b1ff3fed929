package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"elbouchra-cms/internal/handler/http/respond"
)

// HealthStatus is the aggregate health report returned by /health.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
}

// Check reports the outcome of a single dependency probe.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler probes the database and reports overall service health.
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a health handler backed by the given database.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// ServeHTTP handles GET /health. It returns 200 when all checks pass and
// 503 when any dependency is unhealthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]Check{},
	}

	dbCheck := h.checkDatabase(r.Context())
	status.Checks["database"] = dbCheck
	switch dbCheck.Status {
	case "unhealthy":
		status.Status = "unhealthy"
	case "degraded":
		status.Status = "degraded"
	}

	code := http.StatusOK
	if status.Status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, status)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) Check {
	if h.db == nil {
		return Check{Status: "unhealthy", Message: "database not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return Check{Status: "unhealthy", Message: "database unreachable"}
	}

	stats := h.db.Stats()
	if stats.MaxOpenConnections > 0 {
		utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections)
		if utilization > 0.9 {
			return Check{Status: "degraded", Message: "connection pool near capacity"}
		}
	}
	return Check{Status: "healthy"}
}

// LiveHandler handles GET /live. It always returns 200 while the process runs.
func LiveHandler(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// ReadyHandler handles GET /ready. Readiness follows database availability.
func (h *HealthHandler) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	check := h.checkDatabase(r.Context())
	if check.Status == "unhealthy" {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
