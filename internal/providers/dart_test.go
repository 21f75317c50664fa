package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spec-kit/company-research/internal/config"
)

func TestCompanyInfoParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("corp_code"); got != "00126380" {
			t.Errorf("unexpected corp_code: %s", got)
		}
		fmt.Fprint(w, `{
            "status":"000","message":"정상",
            "corp_code":"00126380","corp_name":"삼성전자","stock_code":"005930",
            "ceo_nm":"한종희","adres":"경기도 수원시","induty_code":"264",
            "est_dt":"19690113","hm_url":"https://www.samsung.com"
        }`)
	}))
	defer server.Close()

	client := NewDartClient(config.DartConfig{BaseURL: server.URL, APIKey: "k"})
	company, err := client.CompanyInfo(context.Background(), "00126380")
	if err != nil {
		t.Fatalf("CompanyInfo: %v", err)
	}
	if company.CorpName != "삼성전자" || company.StockCode != "005930" {
		t.Fatalf("unexpected company: %+v", company)
	}
}

func TestCompanyInfoStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"013","message":"조회된 데이타가 없습니다."}`)
	}))
	defer server.Close()

	client := NewDartClient(config.DartConfig{BaseURL: server.URL, APIKey: "k"})
	if _, err := client.CompanyInfo(context.Background(), "00000000"); err == nil {
		t.Fatal("expected error for non-000 status")
	}
}

func TestDisclosuresParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("bgn_de"); got != "20250601" {
			t.Errorf("unexpected bgn_de: %s", got)
		}
		fmt.Fprint(w, `{
            "status":"000","message":"정상",
            "list":[
                {"rcept_no":"20250812000001","corp_code":"00126380","corp_name":"삼성전자",
                 "report_nm":"반기보고서","flr_nm":"삼성전자","rcept_dt":"20250812"}
            ]
        }`)
	}))
	defer server.Close()

	client := NewDartClient(config.DartConfig{BaseURL: server.URL, APIKey: "k"})
	disclosures, err := client.Disclosures(context.Background(), "00126380", "20250601", "20250831")
	if err != nil {
		t.Fatalf("Disclosures: %v", err)
	}
	if len(disclosures) != 1 || disclosures[0].ReceiptNo != "20250812000001" {
		t.Fatalf("unexpected disclosures: %+v", disclosures)
	}
}

func TestDartMockMode(t *testing.T) {
	client := NewDartClient(config.DartConfig{MockMode: true})

	company, err := client.CompanyInfo(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("CompanyInfo: %v", err)
	}
	if company.CorpCode != "12345678" {
		t.Fatalf("mock should echo corp code, got %s", company.CorpCode)
	}

	disclosures, err := client.Disclosures(context.Background(), "12345678", "", "")
	if err != nil {
		t.Fatalf("Disclosures: %v", err)
	}
	if len(disclosures) == 0 {
		t.Fatal("expected fixture disclosures")
	}
}
