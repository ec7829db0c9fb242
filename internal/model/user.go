package model

import (
	"strings"
	"time"
)

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered account
type User struct {
	ID    UserID
	Email string // unique, stored lowercase
	Name  string

	// PasswordHash is the bcrypt hash of the user's password.
	// It is persisted with the document but must never appear in
	// API responses.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lowercases and trims an email address so that lookups
// and the uniqueness check are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DefaultName derives a display name from the local part of an email
// address, used when registration supplies no name
func DefaultName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
