package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/desertthunder/gameshelf/internal/models"
	"github.com/desertthunder/gameshelf/internal/shared"
)

// OnlineNow is the last_online marker written at sign-in and sign-up.
const OnlineNow = "Online now"

// ProfileRepository persists user profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new [ProfileRepository] with the given database connection
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile. Returns [shared.ErrDuplicateUsername] when the
// username is taken.
func (r *ProfileRepository) Create(p models.Profile) error {
	query := `
		INSERT INTO profiles (name, username, avatar, last_online, bg_from, bg_to)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, p.Name, p.Username, p.Avatar, p.LastOnline, p.BgFrom, p.BgTo)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateUsername, p.Username)
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// List retrieves all profiles.
func (r *ProfileRepository) List() ([]models.Profile, error) {
	rows, err := r.db.Query("SELECT name, username, avatar, last_online, bg_from, bg_to FROM profiles")
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		var avatar, lastOnline, bgFrom, bgTo sql.NullString

		if err := rows.Scan(&p.Name, &p.Username, &avatar, &lastOnline, &bgFrom, &bgTo); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}

		p.Avatar = avatar.String
		p.LastOnline = lastOnline.String
		p.BgFrom = bgFrom.String
		p.BgTo = bgTo.String
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return profiles, nil
}

// SetLastOnline updates a profile's presence marker.
func (r *ProfileRepository) SetLastOnline(username, status string) error {
	_, err := r.db.Exec("UPDATE profiles SET last_online = ? WHERE username = ?", status, username)
	if err != nil {
		return fmt.Errorf("failed to update last_online: %w", err)
	}
	return nil
}
