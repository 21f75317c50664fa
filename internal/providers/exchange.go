package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
)

// ExchangeRateClient fetches daily exchange rates. The upstream feed
// publishes nothing on weekends and holidays; callers fall back to the
// previous business day.
type ExchangeRateClient struct {
	cfg  config.ExchangeRateConfig
	http *http.Client
}

// NewExchangeRateClient builds a client with a bounded request timeout.
func NewExchangeRateClient(cfg config.ExchangeRateConfig) *ExchangeRateClient {
	return &ExchangeRateClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type exchangeRateRow struct {
	Result       int    `json:"result"`
	CurrencyUnit string `json:"cur_unit"`
	CurrencyName string `json:"cur_nm"`
	BaseRate     string `json:"deal_bas_r"`
	BuyRate      string `json:"ttb"`
	SellRate     string `json:"tts"`
}

// RatesForDate returns all currency rows published for the given date
// (YYYYMMDD). An empty slice means the feed had no data for that day.
func (c *ExchangeRateClient) RatesForDate(ctx context.Context, date string) ([]domain.ExchangeRate, error) {
	if c.cfg.MockMode {
		return mockRates(date), nil
	}

	endpoint := fmt.Sprintf("%s?authkey=%s&searchdate=%s&data=AP01",
		c.cfg.BaseURL, url.QueryEscape(c.cfg.APIKey), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange request: unexpected status %d", resp.StatusCode)
	}

	var rows []exchangeRateRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	rates := make([]domain.ExchangeRate, 0, len(rows))
	for _, row := range rows {
		if row.Result != 1 {
			continue
		}
		rates = append(rates, domain.ExchangeRate{
			CurrencyUnit: row.CurrencyUnit,
			CurrencyName: row.CurrencyName,
			BaseRate:     parseGroupedFloat(row.BaseRate),
			BuyRate:      parseGroupedFloat(row.BuyRate),
			SellRate:     parseGroupedFloat(row.SellRate),
			BaseDate:     date,
		})
	}
	return rates, nil
}

// parseGroupedFloat parses feed numbers like "1,384.50".
func parseGroupedFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func mockRates(date string) []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{CurrencyUnit: "USD", CurrencyName: "미국 달러", BaseRate: 1384.50, BuyRate: 1370.66, SellRate: 1398.34, BaseDate: date},
		{CurrencyUnit: "EUR", CurrencyName: "유로", BaseRate: 1612.20, BuyRate: 1596.08, SellRate: 1628.32, BaseDate: date},
		{CurrencyUnit: "JPY(100)", CurrencyName: "일본 옌", BaseRate: 941.87, BuyRate: 932.45, SellRate: 951.29, BaseDate: date},
		{CurrencyUnit: "CNH", CurrencyName: "위안화", BaseRate: 194.33, BuyRate: 192.39, SellRate: 196.27, BaseDate: date},
	}
}
