package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/desertthunder/gameshelf/internal/models"
)

// ChannelRepository persists chat channels and their membership.
type ChannelRepository struct {
	db *sql.DB
}

// NewChannelRepository creates a new [ChannelRepository] with the given database connection
func NewChannelRepository(db *sql.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create inserts a channel and its initial member set. The creator is always
// a member; blank and duplicate member names are dropped.
func (r *ChannelRepository) Create(name, createdBy string, members []string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("INSERT INTO channels (name, created_by) VALUES (?, ?)", name, createdBy)
	if err != nil {
		return 0, fmt.Errorf("failed to insert channel: %w", err)
	}

	channelID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get channel id: %w", err)
	}

	unique := map[string]bool{createdBy: true}
	for _, m := range members {
		m = strings.TrimSpace(m)
		if m != "" {
			unique[m] = true
		}
	}

	for m := range unique {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO channel_members (channel_id, username) VALUES (?, ?)",
			channelID, m,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert channel member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit channel: %w", err)
	}

	return channelID, nil
}

// ForUser retrieves the channels a user belongs to, newest first.
func (r *ChannelRepository) ForUser(username string) ([]models.Channel, error) {
	query := `
		SELECT channels.id, channels.name
		FROM channels
		JOIN channel_members ON channels.id = channel_members.channel_id
		WHERE channel_members.username = ?
		ORDER BY channels.id DESC
	`

	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query channels: %w", err)
	}
	defer rows.Close()

	channels := []models.Channel{}
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return channels, nil
}

// AddMember adds a user to a channel. Adding an existing member is a no-op.
func (r *ChannelRepository) AddMember(channelID int64, username string) error {
	_, err := r.db.Exec(
		"INSERT OR IGNORE INTO channel_members (channel_id, username) VALUES (?, ?)",
		channelID, username,
	)
	if err != nil {
		return fmt.Errorf("failed to insert channel member: %w", err)
	}
	return nil
}

// Members retrieves a channel's member usernames, sorted.
func (r *ChannelRepository) Members(channelID int64) ([]string, error) {
	rows, err := r.db.Query(
		"SELECT username FROM channel_members WHERE channel_id = ? ORDER BY username",
		channelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan channel member: %w", err)
		}
		members = append(members, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return members, nil
}
