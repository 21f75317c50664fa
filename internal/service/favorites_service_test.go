package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/providers"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

type fakeCompanyRepo struct {
	companies map[string]*domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*domain.Company{}}
}

func (r *fakeCompanyRepo) Upsert(_ context.Context, company *domain.Company) error {
	r.companies[company.CorpCode] = company
	return nil
}

func (r *fakeCompanyRepo) GetByCorpCode(_ context.Context, corpCode string) (*domain.Company, error) {
	company, ok := r.companies[corpCode]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return company, nil
}

func (r *fakeCompanyRepo) Search(_ context.Context, _ string, _, _ int) ([]*domain.Company, error) {
	var result []*domain.Company
	for _, company := range r.companies {
		result = append(result, company)
	}
	return result, nil
}

func (r *fakeCompanyRepo) Count(_ context.Context, _ string) (int, error) {
	return len(r.companies), nil
}

type fakeFavoriteRepo struct {
	favorites []*domain.Favorite
}

func (r *fakeFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) error {
	favorite.ID = uuid.NewString()
	favorite.RegisteredAt = time.Now()
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userCode string) ([]*domain.Favorite, error) {
	var result []*domain.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserCode == userCode {
			result = append(result, favorite)
		}
	}
	return result, nil
}

func (r *fakeFavoriteRepo) GetByUserAndCorp(_ context.Context, userCode, corpCode string) (*domain.Favorite, error) {
	for _, favorite := range r.favorites {
		if favorite.UserCode == userCode && favorite.CorpCode == corpCode {
			return favorite, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeFavoriteRepo) DeleteByUserAndStock(_ context.Context, userCode, stockCode string) error {
	for i, favorite := range r.favorites {
		if favorite.UserCode == userCode && favorite.StockCode != nil && *favorite.StockCode == stockCode {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newTestFavoritesService() (*FavoritesService, *fakeCompanyRepo, *fakeFavoriteRepo) {
	companies := newFakeCompanyRepo()
	favorites := &fakeFavoriteRepo{}
	dart := providers.NewDartClient(config.DartConfig{MockMode: true})
	companyService := NewCompanyService(companies, dart, zap.NewNop())
	return NewFavoritesService(favorites, companyService, nil), companies, favorites
}

func listedCompany() *domain.Company {
	return &domain.Company{CorpCode: "00126380", CorpName: "샘플전자", StockCode: "005930"}
}

func TestFavoritesAddAndList(t *testing.T) {
	svc, companies, _ := newTestFavoritesService()
	ctx := context.Background()
	companies.companies["00126380"] = listedCompany()

	added, err := svc.Add(ctx, "user-42", "00126380", "005930")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Company.CorpName != "샘플전자" {
		t.Fatalf("unexpected company: %+v", added.Company)
	}
	if added.Favorite.StockCode == nil || *added.Favorite.StockCode != "005930" {
		t.Fatalf("unexpected stock code: %+v", added.Favorite.StockCode)
	}

	list, err := svc.List(ctx, "user-42")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Favorite.CorpCode != "00126380" {
		t.Fatalf("unexpected list: %+v", list)
	}

	other, err := svc.List(ctx, "someone-else")
	if err != nil {
		t.Fatalf("List other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("favorites leaked across users: %+v", other)
	}
}

func TestFavoritesAddDuplicate(t *testing.T) {
	svc, companies, _ := newTestFavoritesService()
	ctx := context.Background()
	companies.companies["00126380"] = listedCompany()

	if _, err := svc.Add(ctx, "user-42", "00126380", "005930"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := svc.Add(ctx, "user-42", "00126380", "005930")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestFavoritesAddStockCodeMismatch(t *testing.T) {
	svc, companies, _ := newTestFavoritesService()
	ctx := context.Background()
	companies.companies["00126380"] = listedCompany()

	_, err := svc.Add(ctx, "user-42", "00126380", "999999")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestFavoritesAddUnknownCompanyFetchesRegistry(t *testing.T) {
	svc, companies, _ := newTestFavoritesService()
	ctx := context.Background()

	// Registry client runs in mock mode, so the unknown corp code is
	// resolved from fixtures and cached in the store.
	added, err := svc.Add(ctx, "user-42", "99999999", "005930")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Company.CorpCode != "99999999" {
		t.Fatalf("unexpected corp code: %s", added.Company.CorpCode)
	}
	if _, ok := companies.companies["99999999"]; !ok {
		t.Fatal("fetched company was not cached")
	}
}

func TestFavoritesDelete(t *testing.T) {
	svc, companies, repo := newTestFavoritesService()
	ctx := context.Background()
	companies.companies["00126380"] = listedCompany()

	if _, err := svc.Add(ctx, "user-42", "00126380", "005930"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(ctx, "user-42", "005930"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.favorites) != 0 {
		t.Fatalf("favorite not removed: %+v", repo.favorites)
	}

	err := svc.Delete(ctx, "user-42", "005930")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
