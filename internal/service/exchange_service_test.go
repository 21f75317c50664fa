package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/cache"
	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/providers"
)

const usdRow = `{"result":1,"cur_unit":"USD","cur_nm":"미국 달러","deal_bas_r":"1,384.50","ttb":"1,370.66","tts":"1,398.34"}`

func newTestExchangeService(t *testing.T, handler http.HandlerFunc) (*ExchangeRateService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	client := providers.NewExchangeRateClient(config.ExchangeRateConfig{BaseURL: server.URL, APIKey: "k"})
	svc := NewExchangeRateService(client, cache.NewStore(redisClient), config.CacheConfig{RateTTLMinutes: 60}, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC) }
	return svc, server
}

func TestLatestCachesFeedResponse(t *testing.T) {
	var calls atomic.Int64
	svc, _ := newTestExchangeService(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprintf(w, "[%s]", usdRow)
	})
	ctx := context.Background()

	rates, err := svc.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(rates) != 1 || rates[0].CurrencyUnit != "USD" {
		t.Fatalf("unexpected rates: %+v", rates)
	}

	if _, err := svc.Latest(ctx); err != nil {
		t.Fatalf("Latest (cached): %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
}

func TestLatestFallsBackToPreviousDay(t *testing.T) {
	svc, _ := newTestExchangeService(t, func(w http.ResponseWriter, r *http.Request) {
		// Today is a holiday: no rows until the day before.
		if r.URL.Query().Get("searchdate") == "20250812" {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprintf(w, "[%s]", usdRow)
	})

	rates, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(rates) != 1 || rates[0].BaseDate != "20250811" {
		t.Fatalf("expected previous-day rates, got %+v", rates)
	}
}

func TestByCurrencyCaseInsensitive(t *testing.T) {
	svc, _ := newTestExchangeService(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "[%s]", usdRow)
	})

	rate, err := svc.ByCurrency(context.Background(), "usd")
	if err != nil {
		t.Fatalf("ByCurrency: %v", err)
	}
	if rate.CurrencyUnit != "USD" || rate.BaseRate != 1384.50 {
		t.Fatalf("unexpected rate: %+v", rate)
	}

	if _, err := svc.ByCurrency(context.Background(), "XYZ"); err == nil {
		t.Fatal("expected not found for unknown currency")
	}
}

func TestHistoricalSkipsEmptyDays(t *testing.T) {
	svc, _ := newTestExchangeService(t, func(w http.ResponseWriter, r *http.Request) {
		// Even-numbered days publish, odd days do not.
		date := r.URL.Query().Get("searchdate")
		last := date[len(date)-1]
		if (last-'0')%2 == 0 {
			fmt.Fprintf(w, "[%s]", usdRow)
			return
		}
		fmt.Fprint(w, "[]")
	})

	history, err := svc.Historical(context.Background(), "USD", 30)
	if err != nil {
		t.Fatalf("Historical: %v", err)
	}
	if len(history) == 0 || len(history) >= 30 {
		t.Fatalf("expected partial history, got %d points", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i-1].Date >= history[i].Date {
			t.Fatalf("history not oldest first: %s then %s", history[i-1].Date, history[i].Date)
		}
	}
}
