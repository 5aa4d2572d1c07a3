package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/models"
	"github.com/desertthunder/gameshelf/internal/shared"
	"golang.org/x/time/rate"
)

const (
	// DefaultBrowseLimit caps how many records the provider returns per call.
	DefaultBrowseLimit = 200

	browseTimeout = 12 * time.Second
	detailTimeout = 8 * time.Second

	coverURLTemplate      = "https://images.igdb.com/igdb/image/upload/t_cover_big/%s.jpg"
	screenshotURLTemplate = "https://images.igdb.com/igdb/image/upload/t_screenshot_big/%s.jpg"
	videoURLTemplate      = "https://www.youtube.com/embed/%s"

	placeholderShotOne = "https://placehold.co/600x338/444/FFF?text=Gameplay+1"
	placeholderShotTwo = "https://placehold.co/600x338/555/FFF?text=Gameplay+2"
)

// Sort keys accepted by [Gateway.Browse].
const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
)

// Service is the catalog surface consumed by the HTTP handlers and CLI.
//
// All operations are total: they degrade to empty or placeholder results
// instead of returning errors.
type Service interface {
	Browse(ctx context.Context, opts BrowseOptions) []models.CatalogItem
	Detail(ctx context.Context, id string) *models.GameDetail
	TopPool(ctx context.Context, limit int) []models.PoolEntry
}

// BrowseOptions controls a [Gateway.Browse] call.
//
// Sort is one of the Sort* keys; empty keeps the provider's popularity order.
// Lean requests the lightweight listing shape (no rating field).
type BrowseOptions struct {
	Sort   string
	Limit  int
	Offset int
	Lean   bool
}

// Gateway issues queries against the catalog provider and normalizes the results.
type Gateway struct {
	baseURL    string
	clientID   string
	creds      *Credentials
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewGateway creates a Gateway for the configured provider.
//
// client defaults to a client with a bounded timeout; provider calls never
// block indefinitely.
func NewGateway(cfg *shared.Config, creds *Credentials, client *http.Client, logger *log.Logger) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: browseTimeout}
	}

	return &Gateway{
		baseURL:    strings.TrimSuffix(cfg.Catalog.APIURL, "/"),
		clientID:   cfg.Credentials.Catalog.ClientID,
		creds:      creds,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(4), 1),
		logger:     logger,
	}
}

// rawGame is the provider's record shape. Only the fields the queries request
// are populated.
type rawGame struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Cover            *rawImage  `json:"cover"`
	TotalRating      float64    `json:"total_rating"`
	TotalRatingCount float64    `json:"total_rating_count"`
	Summary          string     `json:"summary"`
	Screenshots      []rawImage `json:"screenshots"`
	Videos           []rawVideo `json:"videos"`
}

type rawImage struct {
	ImageID string `json:"image_id"`
}

type rawVideo struct {
	VideoID string `json:"video_id"`
}

// Browse lists store items for the given options.
//
// Requires a usable credential; without one it logs a configuration warning
// and returns an empty list. Results missing a cover image are dropped, the
// rest are normalized with synthetic prices and sorted per opts.Sort.
func (g *Gateway) Browse(ctx context.Context, opts BrowseOptions) []models.CatalogItem {
	if opts.Limit <= 0 || opts.Limit > DefaultBrowseLimit {
		opts.Limit = DefaultBrowseLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, browseTimeout)
	defer cancel()

	q := BrowseQuery(opts.Limit, opts.Offset)
	if opts.Lean {
		q = LeanBrowseQuery(opts.Limit, opts.Offset)
	}

	records, err := g.execute(ctx, q)
	if err != nil {
		g.degrade("browse", err)
		return []models.CatalogItem{}
	}

	items := make([]models.CatalogItem, 0, len(records))
	for _, r := range records {
		if r.Cover == nil || r.Cover.ImageID == "" {
			continue
		}

		name := r.Name
		if name == "" {
			name = fmt.Sprintf("Game %d", r.ID)
		}

		items = append(items, models.CatalogItem{
			ID:         r.ID,
			Name:       name,
			CoverURL:   fmt.Sprintf(coverURLTemplate, r.Cover.ImageID),
			Rating:     r.TotalRating,
			Popularity: r.TotalRatingCount,
			Price:      Price(r.ID),
		})
	}

	sortItems(items, opts.Sort)
	return items
}

// Detail fetches the detail record for a single title.
//
// Any failure, unparseable id included, yields the deterministic placeholder
// detail carrying the requested id.
func (g *Gateway) Detail(ctx context.Context, id string) *models.GameDetail {
	gid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return placeholderDetail(id)
	}

	ctx, cancel := context.WithTimeout(ctx, detailTimeout)
	defer cancel()

	records, err := g.execute(ctx, DetailQuery(gid))
	if err != nil || len(records) == 0 {
		if err != nil {
			g.degrade("detail", err)
		}
		return placeholderDetail(id)
	}

	r := records[0]

	name := r.Name
	if name == "" {
		name = fmt.Sprintf("Game %s", id)
	}

	var screenshots []string
	for _, s := range r.Screenshots {
		if s.ImageID != "" {
			screenshots = append(screenshots, fmt.Sprintf(screenshotURLTemplate, s.ImageID))
		}
	}
	if len(screenshots) == 0 {
		screenshots = []string{placeholderShotOne}
	}

	var videoURL *string
	if len(r.Videos) > 0 && r.Videos[0].VideoID != "" {
		u := fmt.Sprintf(videoURLTemplate, r.Videos[0].VideoID)
		videoURL = &u
	}

	return &models.GameDetail{
		ID:          id,
		Name:        name,
		Summary:     r.Summary,
		Screenshots: screenshots,
		VideoURL:    videoURL,
	}
}

// TopPool fetches the seeding pool: the top titles by popularity.
//
// Degrades to an empty slice; callers fall back to the built-in placeholder
// pool.
func (g *Gateway) TopPool(ctx context.Context, limit int) []models.PoolEntry {
	if limit <= 0 || limit > DefaultBrowseLimit {
		limit = DefaultBrowseLimit
	}

	ctx, cancel := context.WithTimeout(ctx, browseTimeout)
	defer cancel()

	records, err := g.execute(ctx, PoolQuery(limit))
	if err != nil {
		g.degrade("top pool", err)
		return []models.PoolEntry{}
	}

	entries := make([]models.PoolEntry, 0, len(records))
	for _, r := range records {
		if r.ID == 0 || r.Name == "" {
			continue
		}
		entries = append(entries, models.PoolEntry{ID: r.ID, Name: r.Name})
	}

	return entries
}

// execute runs a query with the full retry policy: one auth retry after
// invalidation on 401/403, one fallback-query retry on 400, no retry on
// anything else.
func (g *Gateway) execute(ctx context.Context, q Query) ([]rawGame, error) {
	if g.clientID == "" || !g.creds.Configured() {
		return nil, shared.ErrMissingCredentials
	}

	token, err := g.creds.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := g.post(ctx, q.String(), token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		drain(resp)
		g.creds.Invalidate()

		token, err = g.creds.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAuthRejected, err)
		}

		resp, err = g.post(ctx, q.String(), token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrProviderUnavailable, err)
		}
	}

	if resp.StatusCode == http.StatusBadRequest {
		g.logger.Warn("provider rejected query, retrying with fallback shape", "query", q.String())
		drain(resp)

		resp, err = g.post(ctx, q.Fallback().String(), token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrProviderUnavailable, err)
		}
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		g.logger.Error("provider call failed", "status", resp.StatusCode, "body", string(body))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, shared.ErrAuthRejected
		}
		if resp.StatusCode == http.StatusBadRequest {
			return nil, shared.ErrMalformedQuery
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrProviderUnavailable, resp.StatusCode)
	}

	var records []rawGame
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", shared.ErrProviderUnavailable, err)
	}

	return records, nil
}

// post sends a single provider query. The body is the textual filter query.
func (g *Gateway) post(ctx context.Context, query, token string) (*http.Response, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/games", strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Client-ID", g.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	return g.httpClient.Do(req)
}

// degrade logs a failed operation at the level its cause deserves.
func (g *Gateway) degrade(op string, err error) {
	if errors.Is(err, shared.ErrMissingCredentials) {
		g.logger.Warn("catalog provider not configured, returning empty result", "op", op)
		return
	}
	g.logger.Error("catalog operation failed", "op", op, "err", err)
}

func sortItems(items []models.CatalogItem, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortPopularity:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Popularity > items[j].Popularity })
	}
}

func placeholderDetail(id string) *models.GameDetail {
	return &models.GameDetail{
		ID:          id,
		Name:        fmt.Sprintf("Game %s", id),
		Summary:     "Mock summary. Plug the catalog provider here.",
		Screenshots: []string{placeholderShotOne, placeholderShotTwo},
		VideoURL:    nil,
	}
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
