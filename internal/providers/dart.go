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

const dartStatusOK = "000"

// DartClient queries the corporate disclosure system for registry data
// and filings. In mock mode it serves fixture data without network I/O.
type DartClient struct {
	cfg  config.DartConfig
	http *http.Client
}

// NewDartClient builds a client with a bounded request timeout.
func NewDartClient(cfg config.DartConfig) *DartClient {
	return &DartClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type dartCompanyResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	CorpCode    string `json:"corp_code"`
	CorpName    string `json:"corp_name"`
	StockCode   string `json:"stock_code"`
	CEOName     string `json:"ceo_nm"`
	Address     string `json:"adres"`
	Industry    string `json:"induty_code"`
	FoundedAt   string `json:"est_dt"`
	HomepageURL string `json:"hm_url"`
}

type dartDisclosureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	List    []struct {
		ReceiptNo   string `json:"rcept_no"`
		CorpCode    string `json:"corp_code"`
		CorpName    string `json:"corp_name"`
		ReportName  string `json:"report_nm"`
		SubmittedBy string `json:"flr_nm"`
		ReceiptDate string `json:"rcept_dt"`
	} `json:"list"`
}

// CompanyInfo fetches registry data for one corporation.
func (c *DartClient) CompanyInfo(ctx context.Context, corpCode string) (*domain.Company, error) {
	if c.cfg.MockMode {
		return mockCompany(corpCode), nil
	}

	endpoint := fmt.Sprintf("%s/company.json?crtfc_key=%s&corp_code=%s",
		c.cfg.BaseURL, url.QueryEscape(c.cfg.APIKey), url.QueryEscape(corpCode))

	var resp dartCompanyResponse
	if err := c.getJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dartStatusOK {
		return nil, fmt.Errorf("dart company lookup failed: %s %s", resp.Status, resp.Message)
	}
	return &domain.Company{
		CorpCode:    resp.CorpCode,
		CorpName:    resp.CorpName,
		StockCode:   resp.StockCode,
		CEOName:     resp.CEOName,
		Address:     resp.Address,
		Industry:    resp.Industry,
		FoundedAt:   resp.FoundedAt,
		HomepageURL: resp.HomepageURL,
	}, nil
}

// Disclosures lists filings for a corporation within a date range
// (YYYYMMDD, inclusive).
func (c *DartClient) Disclosures(ctx context.Context, corpCode, beginDate, endDate string) ([]*domain.Disclosure, error) {
	if c.cfg.MockMode {
		return mockDisclosures(corpCode), nil
	}

	endpoint := fmt.Sprintf("%s/list.json?crtfc_key=%s&corp_code=%s&bgn_de=%s&end_de=%s",
		c.cfg.BaseURL, url.QueryEscape(c.cfg.APIKey), url.QueryEscape(corpCode),
		url.QueryEscape(beginDate), url.QueryEscape(endDate))

	var resp dartDisclosureResponse
	if err := c.getJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dartStatusOK {
		return nil, fmt.Errorf("dart disclosure lookup failed: %s %s", resp.Status, resp.Message)
	}

	disclosures := make([]*domain.Disclosure, 0, len(resp.List))
	for _, item := range resp.List {
		disclosures = append(disclosures, &domain.Disclosure{
			ReceiptNo:   item.ReceiptNo,
			CorpCode:    item.CorpCode,
			CorpName:    item.CorpName,
			ReportName:  item.ReportName,
			SubmittedBy: item.SubmittedBy,
			ReceiptDate: item.ReceiptDate,
		})
	}
	return disclosures, nil
}

func (c *DartClient) getJSON(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dart request: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mockCompany(corpCode string) *domain.Company {
	return &domain.Company{
		CorpCode:    corpCode,
		CorpName:    "샘플전자",
		StockCode:   "005930",
		CEOName:     "홍길동",
		Address:     "서울특별시 서초구",
		Industry:    "264",
		FoundedAt:   "19690113",
		HomepageURL: "https://www.example.com",
	}
}

func mockDisclosures(corpCode string) []*domain.Disclosure {
	return []*domain.Disclosure{
		{
			ReceiptNo:   "20250812000001",
			CorpCode:    corpCode,
			CorpName:    "샘플전자",
			ReportName:  "반기보고서 (2025.06)",
			SubmittedBy: "샘플전자",
			ReceiptDate: "20250812",
		},
		{
			ReceiptNo:   "20250515000002",
			CorpCode:    corpCode,
			CorpName:    "샘플전자",
			ReportName:  "분기보고서 (2025.03)",
			SubmittedBy: "샘플전자",
			ReceiptDate: "20250515",
		},
	}
}
