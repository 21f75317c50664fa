package dto

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	CorpCode    string `json:"corp_code"`
	CorpName    string `json:"corp_name"`
	StockCode   string `json:"stock_code,omitempty"`
	CEOName     string `json:"ceo_name,omitempty"`
	Address     string `json:"address,omitempty"`
	Industry    string `json:"industry,omitempty"`
	FoundedAt   string `json:"founded_at,omitempty"`
	HomepageURL string `json:"homepage_url,omitempty"`
}

// CompanyListResponse pages companies.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// DisclosureResponse is one filing row.
type DisclosureResponse struct {
	ReceiptNo   string `json:"receipt_no"`
	CorpName    string `json:"corp_name"`
	ReportName  string `json:"report_name"`
	SubmittedBy string `json:"submitted_by"`
	ReceiptDate string `json:"receipt_date"`
}
