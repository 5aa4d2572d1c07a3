package models

// CatalogItem represents a normalized store listing from the catalog provider.
//
// Price is synthetic (derived from the id), Installed reflects the requesting
// user's library when known.
type CatalogItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CoverURL   string  `json:"coverUrl"`
	Rating     float64 `json:"rating"`
	Popularity float64 `json:"popularity"`
	Price      float64 `json:"price"`
	Installed  bool    `json:"installed"`
}

// GameListItem is the lightweight listing shape returned by the lean games endpoint.
type GameListItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CoverURL  string `json:"coverUrl"`
	Installed bool   `json:"installed"`
}

// GameDetail represents the detail view for a single title.
//
// VideoURL is nil when the provider lists no videos. The ID is kept as the
// caller supplied it so placeholder details echo unparseable ids verbatim.
type GameDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Screenshots []string `json:"screenshots"`
	VideoURL    *string  `json:"videoUrl"`
}

// PoolEntry is a seed-pool candidate: the minimal id/name pair needed to
// populate a library row.
type PoolEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Profile represents a user account.
type Profile struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	LastOnline string `json:"lastOnline"`
	BgFrom     string `json:"bgFrom"`
	BgTo       string `json:"bgTo"`
}

// LibraryEntry represents a game owned by a user.
//
// GameID is stored as text; provider ids are numeric but uniqueness is not
// enforced at this layer.
type LibraryEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel represents a chat channel.
type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Message represents a single chat message in a channel.
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
