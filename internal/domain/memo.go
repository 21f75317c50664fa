package domain

import "time"

// Memo is a per-member note attached to a favorited stock.
type Memo struct {
	ID        string
	UserCode  string
	StockCode string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
