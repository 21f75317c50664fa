package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/providers"
	"github.com/spec-kit/company-research/internal/repository"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// CompanyService serves registry data, preferring the local store and
// falling back to the disclosure API for unknown corporations.
type CompanyService struct {
	companies repository.CompanyRepository
	dart      *providers.DartClient
	logger    *zap.Logger
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository, dart *providers.DartClient, logger *zap.Logger) *CompanyService {
	return &CompanyService{companies: companies, dart: dart, logger: logger}
}

// List searches stored companies by name with paging.
func (s *CompanyService) List(ctx context.Context, name string, limit, offset int) ([]*domain.Company, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	companies, err := s.companies.Search(ctx, name, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.companies.Count(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// Get returns one company, fetching and caching it from the registry
// when the store does not have it yet.
func (s *CompanyService) Get(ctx context.Context, corpCode string) (*domain.Company, error) {
	company, err := s.companies.GetByCorpCode(ctx, corpCode)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	fetched, err := s.dart.CompanyInfo(ctx, corpCode)
	if err != nil {
		return nil, apperrors.NewBadGateway("corporate registry unavailable", err)
	}
	if err := s.companies.Upsert(ctx, fetched); err != nil {
		// Serving the fetched data matters more than caching it.
		s.logger.Warn("failed to cache company", zap.String("corp_code", corpCode), zap.Error(err))
	}
	return fetched, nil
}

// Disclosures lists recent filings for a corporation.
func (s *CompanyService) Disclosures(ctx context.Context, corpCode, beginDate, endDate string) ([]*domain.Disclosure, error) {
	disclosures, err := s.dart.Disclosures(ctx, corpCode, beginDate, endDate)
	if err != nil {
		return nil, apperrors.NewBadGateway("corporate registry unavailable", err)
	}
	return disclosures, nil
}
