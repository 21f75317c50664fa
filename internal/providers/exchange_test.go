package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spec-kit/company-research/internal/config"
)

func TestRatesForDateParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("searchdate"); got != "20250811" {
			t.Errorf("unexpected searchdate: %s", got)
		}
		if got := r.URL.Query().Get("authkey"); got != "test-key" {
			t.Errorf("unexpected authkey: %s", got)
		}
		fmt.Fprint(w, `[
            {"result":1,"cur_unit":"USD","cur_nm":"미국 달러","deal_bas_r":"1,384.50","ttb":"1,370.66","tts":"1,398.34"},
            {"result":1,"cur_unit":"JPY(100)","cur_nm":"일본 옌","deal_bas_r":"941.87","ttb":"932.45","tts":"951.29"},
            {"result":2,"cur_unit":"BAD","cur_nm":"oops","deal_bas_r":"0","ttb":"0","tts":"0"}
        ]`)
	}))
	defer server.Close()

	client := NewExchangeRateClient(config.ExchangeRateConfig{BaseURL: server.URL, APIKey: "test-key"})
	rates, err := client.RatesForDate(context.Background(), "20250811")
	if err != nil {
		t.Fatalf("RatesForDate: %v", err)
	}

	// The result=2 row is filtered out.
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].CurrencyUnit != "USD" || rates[0].BaseRate != 1384.50 {
		t.Fatalf("unexpected USD row: %+v", rates[0])
	}
	if rates[1].CurrencyUnit != "JPY(100)" || rates[1].BuyRate != 932.45 {
		t.Fatalf("unexpected JPY row: %+v", rates[1])
	}
	if rates[0].BaseDate != "20250811" {
		t.Fatalf("base date not carried: %s", rates[0].BaseDate)
	}
}

func TestRatesForDateEmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewExchangeRateClient(config.ExchangeRateConfig{BaseURL: server.URL, APIKey: "k"})
	rates, err := client.RatesForDate(context.Background(), "20250810")
	if err != nil {
		t.Fatalf("RatesForDate: %v", err)
	}
	if len(rates) != 0 {
		t.Fatalf("expected empty day, got %d rows", len(rates))
	}
}

func TestRatesForDateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewExchangeRateClient(config.ExchangeRateConfig{BaseURL: server.URL, APIKey: "k"})
	if _, err := client.RatesForDate(context.Background(), "20250811"); err == nil {
		t.Fatal("expected error on upstream 500")
	}
}

func TestRatesForDateMockMode(t *testing.T) {
	client := NewExchangeRateClient(config.ExchangeRateConfig{MockMode: true})
	rates, err := client.RatesForDate(context.Background(), "20250811")
	if err != nil {
		t.Fatalf("RatesForDate: %v", err)
	}
	if len(rates) == 0 {
		t.Fatal("expected fixture rates")
	}
	for _, rate := range rates {
		if rate.BaseDate != "20250811" {
			t.Fatalf("fixture not stamped with date: %+v", rate)
		}
	}
}

func TestParseGroupedFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,384.50", 1384.50},
		{"941.87", 941.87},
		{"1,234,567.89", 1234567.89},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range cases {
		if got := parseGroupedFloat(tc.in); got != tc.want {
			t.Errorf("parseGroupedFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
