package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrNotAccountOwner = errors.New("not the account owner")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotPlayerOwner = errors.New("not the player's creator")
)
