package domain

import "time"

// Favorite links a member to a company they track.
// StockCode is copied from the company at registration time and is nil
// for unlisted companies.
type Favorite struct {
	ID           string
	UserCode     string
	CorpCode     string
	StockCode    *string
	RegisteredAt time.Time
}
