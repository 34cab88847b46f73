package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kitab/kitab-backend/internal/domain"
)

const (
	healthPath = "/health"
	rootPath   = "/"
)

// SystemHandler serves the liveness probe and the service identity root.
// Both responses are constant; the handler holds no state.
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler { return &SystemHandler{} }

// Register mounts GET /health and GET / on r. Other methods on these paths
// fall through to the router's 405 handling.
func (h *SystemHandler) Register(r chi.Router) {
	r.Get(healthPath, h.Health)
	r.Get(rootPath, h.Root)
}

// Paths lists the paths Register mounts. The router keeps them clear of the
// rate limiter so a liveness probe never sees 429.
func (h *SystemHandler) Paths() []string {
	return []string{healthPath, rootPath}
}

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.HealthStatus
// @Router   /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Health())
}

// Root handles GET /
//
// @Summary  Service identity
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.ServiceInfo
// @Router   / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Info())
}
