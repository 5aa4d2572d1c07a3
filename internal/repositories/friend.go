package repositories

import (
	"database/sql"
	"fmt"
)

// FriendRepository persists friend lists.
type FriendRepository struct {
	db *sql.DB
}

// NewFriendRepository creates a new [FriendRepository] with the given database connection
func NewFriendRepository(db *sql.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// Add records that owner friended friend. The relation is one-directional.
func (r *FriendRepository) Add(owner, friend string) error {
	_, err := r.db.Exec(
		"INSERT INTO friends (owner_username, friend_username) VALUES (?, ?)",
		owner, friend,
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}
	return nil
}

// List retrieves the usernames owner has friended.
func (r *FriendRepository) List(owner string) ([]string, error) {
	rows, err := r.db.Query("SELECT friend_username FROM friends WHERE owner_username = ?", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	friends := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return friends, nil
}
