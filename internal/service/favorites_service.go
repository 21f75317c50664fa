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

// FavoritesService manages the companies a member tracks. All
// operations are scoped to the authenticated member's user code.
type FavoritesService struct {
	favorites  repository.FavoriteRepository
	companies  *CompanyService
	dispatcher events.Dispatcher
}

// NewFavoritesService builds the service.
func NewFavoritesService(favorites repository.FavoriteRepository, companies *CompanyService, dispatcher events.Dispatcher) *FavoritesService {
	return &FavoritesService{favorites: favorites, companies: companies, dispatcher: dispatcher}
}

// FavoriteWithCompany pairs a favorite with its company data.
type FavoriteWithCompany struct {
	Favorite *domain.Favorite
	Company  *domain.Company
}

// List returns the member's favorites, newest first.
func (s *FavoritesService) List(ctx context.Context, userCode string) ([]*FavoriteWithCompany, error) {
	favorites, err := s.favorites.ListByUser(ctx, userCode)
	if err != nil {
		return nil, err
	}

	result := make([]*FavoriteWithCompany, 0, len(favorites))
	for _, favorite := range favorites {
		company, err := s.companies.Get(ctx, favorite.CorpCode)
		if err != nil {
			return nil, err
		}
		result = append(result, &FavoriteWithCompany{Favorite: favorite, Company: company})
	}
	return result, nil
}

// Add registers a company as a favorite. Duplicate registrations are
// rejected, and a supplied stock code must match the company's listing
// (both empty for unlisted companies).
func (s *FavoritesService) Add(ctx context.Context, userCode, corpCode, stockCode string) (*FavoriteWithCompany, error) {
	if corpCode == "" {
		return nil, apperrors.NewValidationError("corp_code is required", nil)
	}

	if _, err := s.favorites.GetByUserAndCorp(ctx, userCode, corpCode); err == nil {
		return nil, apperrors.NewConflict("company already favorited", map[string]any{"corp_code": corpCode})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	company, err := s.companies.Get(ctx, corpCode)
	if err != nil {
		return nil, err
	}

	if stockCode != company.StockCode {
		return nil, apperrors.NewValidationError("stock_code does not match company listing", map[string]any{
			"stock_code": stockCode,
			"corp_code":  corpCode,
		})
	}

	favorite := &domain.Favorite{UserCode: userCode, CorpCode: corpCode}
	if stockCode != "" {
		favorite.StockCode = &stockCode
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventFavoriteAdded, userCode, events.FavoritePayload{CorpCode: corpCode, StockCode: stockCode})
	return &FavoriteWithCompany{Favorite: favorite, Company: company}, nil
}

// Delete removes a favorite by its stock code.
func (s *FavoritesService) Delete(ctx context.Context, userCode, stockCode string) error {
	if err := s.favorites.DeleteByUserAndStock(ctx, userCode, stockCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("favorite", map[string]any{"stock_code": stockCode})
		}
		return err
	}
	s.publish(ctx, events.EventFavoriteRemoved, userCode, events.FavoritePayload{StockCode: stockCode})
	return nil
}

func (s *FavoritesService) publish(ctx context.Context, eventType events.EventType, userCode string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserCode:  userCode,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
