package domain

import "time"

// Company holds corporate registry data fetched from the disclosure system.
// StockCode is empty for unlisted companies.
type Company struct {
	CorpCode    string
	CorpName    string
	StockCode   string
	CEOName     string
	Address     string
	Industry    string
	FoundedAt   string
	HomepageURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Disclosure is a single public filing entry.
type Disclosure struct {
	ReceiptNo   string
	CorpCode    string
	CorpName    string
	ReportName  string
	SubmittedBy string
	ReceiptDate string
}
