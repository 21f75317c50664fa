package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/events"
	"github.com/spec-kit/company-research/internal/repository"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// MemoService manages per-stock notes for the authenticated member.
type MemoService struct {
	memos      repository.MemoRepository
	dispatcher events.Dispatcher
}

// NewMemoService builds the service.
func NewMemoService(memos repository.MemoRepository, dispatcher events.Dispatcher) *MemoService {
	return &MemoService{memos: memos, dispatcher: dispatcher}
}

// Get returns the member's memo for a stock.
func (s *MemoService) Get(ctx context.Context, userCode, stockCode string) (*domain.Memo, error) {
	memo, err := s.memos.GetByUserAndStock(ctx, userCode, stockCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("memo", map[string]any{"stock_code": stockCode})
		}
		return nil, err
	}
	return memo, nil
}

// Save creates or replaces the member's memo for a stock.
func (s *MemoService) Save(ctx context.Context, userCode, stockCode, content string) (*domain.Memo, error) {
	if content == "" {
		return nil, apperrors.NewValidationError("content is required", nil)
	}

	memo := &domain.Memo{UserCode: userCode, StockCode: stockCode, Content: content}
	if err := s.memos.Upsert(ctx, memo); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMemoSaved,
			UserCode:  userCode,
			Timestamp: time.Now(),
			Payload:   events.MemoSavedPayload{StockCode: stockCode},
		})
	}
	return memo, nil
}
