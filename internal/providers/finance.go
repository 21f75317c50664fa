package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
)

// FinanceClient fetches daily stock prices from the securities-info API.
type FinanceClient struct {
	cfg  config.FinanceConfig
	http *http.Client
	now  func() time.Time
}

// NewFinanceClient builds a client with a bounded request timeout.
func NewFinanceClient(cfg config.FinanceConfig) *FinanceClient {
	return &FinanceClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}, now: time.Now}
}

type financeResponse struct {
	Response struct {
		Body struct {
			Items struct {
				Item []struct {
					BaseDate   string `json:"basDt"`
					StockName  string `json:"itmsNm"`
					Close      string `json:"clpr"`
					Open       string `json:"mkp"`
					High       string `json:"hipr"`
					Low        string `json:"lopr"`
					Volume     string `json:"trqu"`
					Change     string `json:"vs"`
					ChangeRate string `json:"fltRt"`
				} `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// Chart returns up to `days` daily candles for a stock, oldest first.
func (c *FinanceClient) Chart(ctx context.Context, stockCode string, days int) ([]domain.CandlePoint, error) {
	if c.cfg.MockMode {
		return mockCandles(days, c.now()), nil
	}

	end := c.now()
	begin := end.AddDate(0, 0, -days)
	items, err := c.fetch(ctx, stockCode, begin.Format("20060102"), end.Format("20060102"))
	if err != nil {
		return nil, err
	}

	candles := make([]domain.CandlePoint, 0, len(items.Response.Body.Items.Item))
	// The feed returns newest first; reverse into chart order.
	for i := len(items.Response.Body.Items.Item) - 1; i >= 0; i-- {
		item := items.Response.Body.Items.Item[i]
		candles = append(candles, domain.CandlePoint{
			Date:   item.BaseDate,
			Open:   parseFloat(item.Open),
			High:   parseFloat(item.High),
			Low:    parseFloat(item.Low),
			Close:  parseFloat(item.Close),
			Volume: parseInt(item.Volume),
		})
	}
	return candles, nil
}

// Quote returns the most recent traded price for a stock.
func (c *FinanceClient) Quote(ctx context.Context, stockCode string) (*domain.StockQuote, error) {
	if c.cfg.MockMode {
		return mockQuote(stockCode, c.now()), nil
	}

	end := c.now()
	begin := end.AddDate(0, 0, -7)
	items, err := c.fetch(ctx, stockCode, begin.Format("20060102"), end.Format("20060102"))
	if err != nil {
		return nil, err
	}
	rows := items.Response.Body.Items.Item
	if len(rows) == 0 {
		return nil, fmt.Errorf("finance: no price data for %s", stockCode)
	}

	latest := rows[0]
	return &domain.StockQuote{
		StockCode:  stockCode,
		StockName:  latest.StockName,
		Price:      parseFloat(latest.Close),
		Change:     parseFloat(latest.Change),
		ChangeRate: parseFloat(latest.ChangeRate),
		Volume:     parseInt(latest.Volume),
		BaseDate:   latest.BaseDate,
	}, nil
}

func (c *FinanceClient) fetch(ctx context.Context, stockCode, beginDate, endDate string) (*financeResponse, error) {
	endpoint := fmt.Sprintf("%s?serviceKey=%s&resultType=json&likeSrtnCd=%s&beginBasDt=%s&endBasDt=%s&numOfRows=120",
		c.cfg.BaseURL, url.QueryEscape(c.cfg.APIKey), url.QueryEscape(stockCode),
		url.QueryEscape(beginDate), url.QueryEscape(endDate))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("finance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finance request: unexpected status %d", resp.StatusCode)
	}

	var parsed financeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseInt(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func mockCandles(days int, now time.Time) []domain.CandlePoint {
	candles := make([]domain.CandlePoint, 0, days)
	price := 70000.0
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		drift := float64((i%7)-3) * 150
		candles = append(candles, domain.CandlePoint{
			Date:   day.Format("20060102"),
			Open:   price + drift,
			High:   price + drift + 400,
			Low:    price + drift - 400,
			Close:  price + drift + 100,
			Volume: 12_000_000 + int64(i)*10_000,
		})
	}
	return candles
}

func mockQuote(stockCode string, now time.Time) *domain.StockQuote {
	return &domain.StockQuote{
		StockCode:  stockCode,
		StockName:  "샘플전자",
		Price:      70100,
		Change:     600,
		ChangeRate: 0.86,
		Volume:     13_456_789,
		BaseDate:   now.Format("20060102"),
	}
}
