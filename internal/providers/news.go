package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
)

// NewsClient searches the news API by keyword.
type NewsClient struct {
	cfg  config.NewsConfig
	http *http.Client
}

// NewNewsClient builds a client with a bounded request timeout.
func NewNewsClient(cfg config.NewsConfig) *NewsClient {
	return &NewsClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

// NewsSearchResult carries one page of search hits.
type NewsSearchResult struct {
	Total   int               `json:"total"`
	Start   int               `json:"start"`
	Display int               `json:"display"`
	Items   []domain.NewsItem `json:"items"`
}

type newsAPIResponse struct {
	Total   int `json:"total"`
	Start   int `json:"start"`
	Display int `json:"display"`
	Items   []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
	} `json:"items"`
}

// Search queries the provider. display caps page size (max 100), start
// is the 1-based offset, sort is "date" or "sim".
func (c *NewsClient) Search(ctx context.Context, query string, display, start int, sort string) (*NewsSearchResult, error) {
	if c.cfg.MockMode {
		return mockNews(query, display, start), nil
	}

	endpoint := fmt.Sprintf("%s?query=%s&display=%d&start=%d&sort=%s",
		c.cfg.BaseURL, url.QueryEscape(query), display, start, url.QueryEscape(sort))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", c.cfg.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.cfg.ClientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news request: unexpected status %d", resp.StatusCode)
	}

	var parsed newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	result := &NewsSearchResult{Total: parsed.Total, Start: parsed.Start, Display: parsed.Display}
	for _, item := range parsed.Items {
		result.Items = append(result.Items, domain.NewsItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			PublishedAt: item.PubDate,
		})
	}
	return result, nil
}

func mockNews(query string, display, start int) *NewsSearchResult {
	items := []domain.NewsItem{
		{
			Title:       fmt.Sprintf("%s, 2분기 실적 발표", query),
			Link:        "https://news.example.com/articles/1",
			Description: "영업이익이 시장 기대치를 웃돌았다.",
			PublishedAt: "Mon, 11 Aug 2025 09:00:00 +0900",
		},
		{
			Title:       fmt.Sprintf("%s 신규 투자 계획 공개", query),
			Link:        "https://news.example.com/articles/2",
			Description: "향후 3년간 대규모 설비 투자를 진행한다.",
			PublishedAt: "Fri, 08 Aug 2025 14:30:00 +0900",
		},
	}
	if display < len(items) {
		items = items[:display]
	}
	return &NewsSearchResult{Total: 2, Start: start, Display: len(items), Items: items}
}
