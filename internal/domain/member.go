package domain

import "time"

// Member is the domain model for registered users.
// UserCode is a UUID assigned at signup and is the subject of issued tokens.
type Member struct {
	UserCode     string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
