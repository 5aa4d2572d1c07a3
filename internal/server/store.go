package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/models"
	"github.com/desertthunder/gameshelf/internal/repositories"
)

const (
	leanDefaultLimit = 60
	leanMaxLimit     = 200
)

// StoreHandler serves the catalog-backed store endpoints.
type StoreHandler struct {
	catalog catalog.Service
	library *repositories.LibraryRepository
	logger  *log.Logger
}

// NewStoreHandler creates a StoreHandler backed by the given catalog service
// and library repository.
func NewStoreHandler(svc catalog.Service, library *repositories.LibraryRepository, logger *log.Logger) *StoreHandler {
	return &StoreHandler{catalog: svc, library: library, logger: logger}
}

// Register wires the store routes onto the router.
func (h *StoreHandler) Register(r Router) {
	r.Handle(http.MethodGet, "/store/games", http.HandlerFunc(h.StoreGames))
	r.Handle(http.MethodGet, "/games", http.HandlerFunc(h.Games))
	r.Handle(http.MethodGet, "/games/{id}", http.HandlerFunc(h.GameDetail))
}

// StoreGames handles GET /store/games.
//
// Query params: sort (popularity|rating|price_asc|price_desc), offset,
// username. The installed flag reflects the named user's library when it has
// entries, otherwise the first three items are flagged as a demo preview.
func (h *StoreHandler) StoreGames(w http.ResponseWriter, r *http.Request) {
	sort := strings.ToLower(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = catalog.SortPopularity
	}

	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	items := h.catalog.Browse(r.Context(), catalog.BrowseOptions{
		Sort:   sort,
		Limit:  catalog.DefaultBrowseLimit,
		Offset: offset,
	})

	owned := h.ownedIDs(r.URL.Query().Get("username"))
	catalog.TagInstalled(items, owned)

	writeJSON(w, http.StatusOK, items)
}

// Games handles GET /games, the lean listing used by library pickers.
//
// limit clamps to 1..200 and defaults to 60.
func (h *StoreHandler) Games(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", leanDefaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > leanMaxLimit {
		limit = leanMaxLimit
	}

	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	items := h.catalog.Browse(r.Context(), catalog.BrowseOptions{
		Limit:  limit,
		Offset: offset,
		Lean:   true,
	})

	owned := h.ownedIDs(r.URL.Query().Get("username"))
	catalog.TagInstalled(items, owned)

	out := make([]models.GameListItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.GameListItem{
			ID:        it.ID,
			Name:      it.Name,
			CoverURL:  it.CoverURL,
			Installed: it.Installed,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// GameDetail handles GET /games/{id}. Never 404s: unknown or unparseable ids
// get a placeholder detail echoing the requested id.
func (h *StoreHandler) GameDetail(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Detail(r.Context(), r.PathValue("id")))
}

// ownedIDs looks up the user's library ids, treating lookup failures and a
// missing username as "unknown ownership".
func (h *StoreHandler) ownedIDs(username string) map[int64]bool {
	if username == "" {
		return nil
	}

	owned, err := h.library.InstalledIDs(username)
	if err != nil {
		h.logger.Warn("library lookup failed", "username", username, "error", err)
		return nil
	}
	return owned
}

// queryInt parses an integer query parameter, falling back on absent or
// malformed values.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
