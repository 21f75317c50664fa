package service

import (
	"context"

	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/providers"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// StockService serves price data from the finance provider.
type StockService struct {
	finance *providers.FinanceClient
}

// NewStockService builds the service.
func NewStockService(finance *providers.FinanceClient) *StockService {
	return &StockService{finance: finance}
}

// Chart returns daily candles for the requested period. Only 30, 60
// and 90 day windows are served.
func (s *StockService) Chart(ctx context.Context, stockCode string, period int) ([]domain.CandlePoint, error) {
	switch period {
	case 30, 60, 90:
	default:
		return nil, apperrors.NewValidationError("period must be 30, 60 or 90", map[string]any{"period": period})
	}

	candles, err := s.finance.Chart(ctx, stockCode, period)
	if err != nil {
		return nil, apperrors.NewBadGateway("stock price feed unavailable", err)
	}
	return candles, nil
}

// Quote returns the latest traded price for a stock.
func (s *StockService) Quote(ctx context.Context, stockCode string) (*domain.StockQuote, error) {
	quote, err := s.finance.Quote(ctx, stockCode)
	if err != nil {
		return nil, apperrors.NewBadGateway("stock price feed unavailable", err)
	}
	return quote, nil
}
