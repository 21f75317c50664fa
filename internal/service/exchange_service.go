package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/cache"
	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/providers"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// maxRateLookback bounds the walk to the previous business day when the
// feed has no data (weekends, holiday runs).
const maxRateLookback = 7

// ExchangeRateService serves daily exchange rates with a Redis-backed
// cache in front of the provider.
type ExchangeRateService struct {
	rates  *providers.ExchangeRateClient
	cache  *cache.Store
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewExchangeRateService builds the service.
func NewExchangeRateService(rates *providers.ExchangeRateClient, store *cache.Store, cfg config.CacheConfig, logger *zap.Logger) *ExchangeRateService {
	return &ExchangeRateService{
		rates:  rates,
		cache:  store,
		ttl:    time.Duration(cfg.RateTTLMinutes) * time.Minute,
		logger: logger,
		now:    time.Now,
	}
}

// Latest returns the most recent published rate table, walking back
// from today until the feed has data.
func (s *ExchangeRateService) Latest(ctx context.Context) ([]domain.ExchangeRate, error) {
	day := s.now()
	for i := 0; i < maxRateLookback; i++ {
		date := day.AddDate(0, 0, -i).Format("20060102")
		rates, err := s.ratesForDate(ctx, date)
		if err != nil {
			return nil, err
		}
		if len(rates) > 0 {
			return rates, nil
		}
	}
	return nil, apperrors.NewNotFound("exchange rates", nil)
}

// ByCurrency returns the latest rate for one currency unit, e.g. "USD".
func (s *ExchangeRateService) ByCurrency(ctx context.Context, currencyUnit string) (*domain.ExchangeRate, error) {
	rates, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rates {
		if strings.EqualFold(rates[i].CurrencyUnit, currencyUnit) {
			return &rates[i], nil
		}
	}
	return nil, apperrors.NewNotFound("currency", map[string]any{"currency": currencyUnit})
}

// Historical returns up to `days` of base-rate history for a currency,
// oldest first. Days without published data are skipped.
func (s *ExchangeRateService) Historical(ctx context.Context, currencyUnit string, days int) ([]domain.HistoricalRate, error) {
	if days <= 0 || days > 90 {
		days = 30
	}

	var history []domain.HistoricalRate
	for i := days - 1; i >= 0; i-- {
		date := s.now().AddDate(0, 0, -i).Format("20060102")
		rates, err := s.ratesForDate(ctx, date)
		if err != nil {
			return nil, err
		}
		for _, rate := range rates {
			if strings.EqualFold(rate.CurrencyUnit, currencyUnit) {
				history = append(history, domain.HistoricalRate{Date: date, Rate: rate.BaseRate})
				break
			}
		}
	}
	if len(history) == 0 {
		return nil, apperrors.NewNotFound("currency", map[string]any{"currency": currencyUnit})
	}
	return history, nil
}

func (s *ExchangeRateService) ratesForDate(ctx context.Context, date string) ([]domain.ExchangeRate, error) {
	key := "rates:" + date

	var cached []domain.ExchangeRate
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("rate cache read failed", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	rates, err := s.rates.RatesForDate(ctx, date)
	if err != nil {
		return nil, apperrors.NewBadGateway("exchange rate feed unavailable", err)
	}
	if err := s.cache.Set(ctx, key, rates, s.ttl); err != nil {
		s.logger.Warn("rate cache write failed", zap.Error(err))
	}
	return rates, nil
}
