package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/gameshelf/internal/models"
)

// latestMessageCount caps how much history a non-incremental fetch returns.
const latestMessageCount = 50

// MessageRepository persists channel messages.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new [MessageRepository] with the given database connection
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Insert appends a message to a channel.
func (r *MessageRepository) Insert(channelID int64, sender, text string) error {
	_, err := r.db.Exec(
		"INSERT INTO messages (channel_id, sender, text) VALUES (?, ?, ?)",
		channelID, sender, text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// Latest retrieves the most recent messages in a channel in ascending id order.
func (r *MessageRepository) Latest(channelID int64) ([]models.Message, error) {
	query := `
		SELECT id, sender, text, created_at FROM messages
		WHERE channel_id = ? ORDER BY id DESC LIMIT ?
	`

	messages, err := r.scan(query, channelID, latestMessageCount)
	if err != nil {
		return nil, err
	}

	// Query walks newest-first for the LIMIT; callers want chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// Since retrieves messages with id greater than sinceID in ascending order,
// for incremental polling.
func (r *MessageRepository) Since(channelID, sinceID int64) ([]models.Message, error) {
	query := `
		SELECT id, sender, text, created_at FROM messages
		WHERE channel_id = ? AND id > ? ORDER BY id ASC
	`
	return r.scan(query, channelID, sinceID)
}

func (r *MessageRepository) scan(query string, args ...any) ([]models.Message, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		var createdAt sql.NullString
		if err := rows.Scan(&m.ID, &m.Sender, &m.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.CreatedAt = createdAt.String
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return messages, nil
}
