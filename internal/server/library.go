package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/repositories"
)

// LibraryHandler serves the per-user library endpoints.
type LibraryHandler struct {
	library *repositories.LibraryRepository
	logger  *log.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(library *repositories.LibraryRepository, logger *log.Logger) *LibraryHandler {
	return &LibraryHandler{library: library, logger: logger}
}

// Register wires the library routes onto the router.
func (h *LibraryHandler) Register(r Router) {
	r.Handle("GET, POST", "/library/{username}", http.HandlerFunc(h.Library))
}

// Library handles GET and POST /library/{username}.
//
// POST inserts an entry then falls through to return the full library, so
// clients always see the post-write state. Explicit writes are not
// best-effort: a failed insert is a 500.
func (h *LibraryHandler) Library(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if r.Method == http.MethodPost {
		var body struct {
			ID   any    `json:"id"`
			Name string `json:"name"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "id and name required")
			return
		}

		gameID := idString(body.ID)
		if gameID == "" || body.Name == "" {
			writeError(w, http.StatusBadRequest, "id and name required")
			return
		}

		if err := h.library.Insert(username, gameID, body.Name); err != nil {
			h.logger.Error("library insert failed", "username", username, "error", err)
			writeError(w, http.StatusInternalServerError, "failed")
			return
		}
	}

	entries, err := h.library.Entries(username)
	if err != nil {
		h.logger.Error("library read failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
