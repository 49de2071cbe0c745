package database

import (
	"database/sql"
	"fmt"
	"time"

	"showdb/internal/types"
)

// GetUserByEmail fetches one account by email. A missing account surfaces as
// sql.ErrNoRows so callers can distinguish "not found" from real faults.
func GetUserByEmail(db *sql.DB, email string) (*types.User, error) {
	var user types.User
	err := db.QueryRow(`
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE email = ?
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Created, &user.Updated)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// CreateUser persists a new account. The password is stored exactly as given;
// uniqueness of email is enforced by the schema.
func CreateUser(db *sql.DB, name, email, password string) (*types.User, error) {
	now := time.Now()
	result, err := db.Exec(`
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, email, password, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user ID: %w", err)
	}

	return &types.User{
		ID:       int(userID),
		Name:     name,
		Email:    email,
		Password: password,
		Created:  now,
		Updated:  now,
	}, nil
}
