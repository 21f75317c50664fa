package dto

import "time"

// SignupRequest payload for new members.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints. Token and
// ExpiresAt are omitted on verify, which returns member data only.
type AuthResponse struct {
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UserCode  string     `json:"user_code"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
}
