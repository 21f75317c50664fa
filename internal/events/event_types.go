package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserLoggedIn    EventType = "user_logged_in"
	EventFavoriteAdded   EventType = "favorite_added"
	EventFavoriteRemoved EventType = "favorite_removed"
	EventMemoSaved       EventType = "memo_saved"
)

// Event represents a domain event emitted by services. UserCode is the
// acting member's subject identifier.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserCode  string      `json:"user_code"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// FavoritePayload payload for favorite added/removed events.
type FavoritePayload struct {
	CorpCode  string `json:"corp_code,omitempty"`
	StockCode string `json:"stock_code,omitempty"`
}

// MemoSavedPayload payload.
type MemoSavedPayload struct {
	StockCode string `json:"stock_code"`
}
