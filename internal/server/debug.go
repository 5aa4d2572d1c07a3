package server

import (
	"net/http"

	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/shared"
)

// DebugHandler exposes catalog credential status for troubleshooting a
// misconfigured provider without leaking any secret material.
type DebugHandler struct {
	cfg   *shared.Config
	creds *catalog.Credentials
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(cfg *shared.Config, creds *catalog.Credentials) *DebugHandler {
	return &DebugHandler{cfg: cfg, creds: creds}
}

// Register wires the debug route onto the router.
func (h *DebugHandler) Register(r Router) {
	r.Handle(http.MethodGet, "/debug/catalog", http.HandlerFunc(h.Status))
}

// Status handles GET /debug/catalog. It reports which credential pieces are
// present and whether a bearer token can actually be obtained right now.
func (h *DebugHandler) Status(w http.ResponseWriter, r *http.Request) {
	cat := h.cfg.Credentials.Catalog

	_, err := h.creds.Token(r.Context())

	writeJSON(w, http.StatusOK, map[string]bool{
		"hasClientId":     cat.ClientID != "",
		"hasClientSecret": cat.ClientSecret != "",
		"hasAccessToken":  cat.AccessToken != "",
		"canFetchToken":   err == nil,
	})
}
