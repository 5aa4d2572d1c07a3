package repositories

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/desertthunder/gameshelf/internal/models"
)

// LibraryRepository persists per-user game libraries.
//
// Implements catalog.LibraryStore for the deterministic seeder. Game ids are
// stored as text; per-item uniqueness is deliberately not enforced here.
type LibraryRepository struct {
	db *sql.DB
}

// NewLibraryRepository creates a new [LibraryRepository] with the given database connection
func NewLibraryRepository(db *sql.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

// Count returns the number of library rows owned by a user.
func (r *LibraryRepository) Count(owner string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(1) FROM library WHERE owner_username = ?", owner).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count library entries: %w", err)
	}
	return count, nil
}

// Insert adds a library row for a user.
func (r *LibraryRepository) Insert(owner, gameID, gameName string) error {
	_, err := r.db.Exec(
		"INSERT INTO library (owner_username, game_id, game_name) VALUES (?, ?, ?)",
		owner, gameID, gameName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert library entry: %w", err)
	}
	return nil
}

// Entries retrieves all of a user's library rows.
func (r *LibraryRepository) Entries(owner string) ([]models.LibraryEntry, error) {
	rows, err := r.db.Query("SELECT game_id, game_name FROM library WHERE owner_username = ?", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query library: %w", err)
	}
	defer rows.Close()

	entries := []models.LibraryEntry{}
	for rows.Next() {
		var e models.LibraryEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan library entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// InstalledIDs returns the set of numeric game ids a user owns.
//
// Rows whose stored id is not numeric are skipped.
func (r *LibraryRepository) InstalledIDs(owner string) (map[int64]bool, error) {
	rows, err := r.db.Query("SELECT game_id FROM library WHERE owner_username = ?", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query library ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan library id: %w", err)
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			ids[id] = true
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}
