package handlers

import (
	"net/http"

	"github.com/akinalp/wpsync/pkg"
)

// Version, build sırasında -ldflags ile override edilebilir.
var Version = "1.0.0"

// HealthHandler, servis bilgisi ve health check endpoint'leri.
type HealthHandler struct{}

// NewHealthHandler, constructor.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root godoc
// GET /{$}
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]any{
		"name":    "WP/WC Sync API",
		"version": Version,
		"endpoints": map[string]string{
			"sync":        "/api/sync",
			"woocommerce": "/api/wc",
			"wordpress":   "/api/wp",
			"validation":  "/api/validation",
			"health":      "/api/health",
		},
	})
}

// Health godoc
// GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	pkg.JSONWithMessage(w, http.StatusOK, map[string]string{"status": "healthy"}, localizer(r).T("health.ok"))
}
