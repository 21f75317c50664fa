package domain

// CandlePoint is one day of price history for a listed stock.
type CandlePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// StockQuote is the latest traded price for a stock.
type StockQuote struct {
	StockCode  string  `json:"stock_code"`
	StockName  string  `json:"stock_name"`
	Price      float64 `json:"price"`
	Change     float64 `json:"change"`
	ChangeRate float64 `json:"change_rate"`
	Volume     int64   `json:"volume"`
	BaseDate   string  `json:"base_date"`
}

// ExchangeRate is one currency row from the daily exchange-rate feed.
type ExchangeRate struct {
	CurrencyUnit string  `json:"currency_unit"`
	CurrencyName string  `json:"currency_name"`
	BaseRate     float64 `json:"base_rate"`
	BuyRate      float64 `json:"buy_rate"`
	SellRate     float64 `json:"sell_rate"`
	BaseDate     string  `json:"base_date"`
}

// HistoricalRate is a dated base-rate sample for charting.
type HistoricalRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// NewsItem is a single search hit from the news provider.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
}
