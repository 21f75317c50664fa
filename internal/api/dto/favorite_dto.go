package dto

import "time"

// AddFavoriteRequest registers a company as a favorite. StockCode is
// empty for unlisted companies.
type AddFavoriteRequest struct {
	CorpCode  string `json:"corp_code"`
	StockCode string `json:"stock_code"`
}

// FavoriteResponse is one tracked company.
type FavoriteResponse struct {
	CorpCode     string    `json:"corp_code"`
	CorpName     string    `json:"corp_name"`
	StockCode    string    `json:"stock_code,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// MemoRequest saves a note on a favorited stock.
type MemoRequest struct {
	Content string `json:"content"`
}

// MemoResponse is the stored note.
type MemoResponse struct {
	StockCode string    `json:"stock_code"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
