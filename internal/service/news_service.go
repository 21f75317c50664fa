package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/cache"
	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/providers"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// NewsService searches news with a short-lived cache per query page.
type NewsService struct {
	news   *providers.NewsClient
	cache  *cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewNewsService builds the service.
func NewNewsService(news *providers.NewsClient, store *cache.Store, cfg config.CacheConfig, logger *zap.Logger) *NewsService {
	return &NewsService{
		news:   news,
		cache:  store,
		ttl:    time.Duration(cfg.NewsTTLMinutes) * time.Minute,
		logger: logger,
	}
}

// Search queries the provider, normalizing paging parameters to the
// provider's limits (display 1-100, start 1-1000, sort date|sim).
func (s *NewsService) Search(ctx context.Context, query string, display, start int, sort string) (*providers.NewsSearchResult, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("query is required", nil)
	}
	if display <= 0 || display > 100 {
		display = 10
	}
	if start <= 0 || start > 1000 {
		start = 1
	}
	if sort != "sim" {
		sort = "date"
	}

	key := fmt.Sprintf("news:%s:%d:%d:%s", query, display, start, sort)

	var cached providers.NewsSearchResult
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("news cache read failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	result, err := s.news.Search(ctx, query, display, start, sort)
	if err != nil {
		return nil, apperrors.NewBadGateway("news feed unavailable", err)
	}
	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.logger.Warn("news cache write failed", zap.Error(err))
	}
	return result, nil
}
