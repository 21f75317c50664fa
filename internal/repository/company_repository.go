package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-research/internal/domain"
)

// CompanyRepository defines persistence access for registry data.
type CompanyRepository interface {
	Upsert(ctx context.Context, company *domain.Company) error
	GetByCorpCode(ctx context.Context, corpCode string) (*domain.Company, error)
	Search(ctx context.Context, name string, limit, offset int) ([]*domain.Company, error)
	Count(ctx context.Context, name string) (int, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Upsert(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO company (corp_code, corp_name, stock_code, ceo_name, address, industry, founded_at, homepage_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (corp_code) DO UPDATE SET
            corp_name=EXCLUDED.corp_name,
            stock_code=EXCLUDED.stock_code,
            ceo_name=EXCLUDED.ceo_name,
            address=EXCLUDED.address,
            industry=EXCLUDED.industry,
            founded_at=EXCLUDED.founded_at,
            homepage_url=EXCLUDED.homepage_url,
            updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		company.CorpCode,
		company.CorpName,
		company.StockCode,
		company.CEOName,
		company.Address,
		company.Industry,
		company.FoundedAt,
		company.HomepageURL,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByCorpCode(ctx context.Context, corpCode string) (*domain.Company, error) {
	const query = `
        SELECT corp_code, corp_name, stock_code, ceo_name, address, industry, founded_at, homepage_url, created_at, updated_at
        FROM company WHERE corp_code=$1`

	return scanCompany(r.pool.QueryRow(ctx, query, corpCode))
}

func (r *companyRepository) Search(ctx context.Context, name string, limit, offset int) ([]*domain.Company, error) {
	const query = `
        SELECT corp_code, corp_name, stock_code, ceo_name, address, industry, founded_at, homepage_url, created_at, updated_at
        FROM company
        WHERE ($1 = '' OR corp_name ILIKE '%' || $1 || '%')
        ORDER BY corp_name
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Count(ctx context.Context, name string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM company
        WHERE ($1 = '' OR corp_name ILIKE '%' || $1 || '%')`

	var count int
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	if err := row.Scan(
		&company.CorpCode,
		&company.CorpName,
		&company.StockCode,
		&company.CEOName,
		&company.Address,
		&company.Industry,
		&company.FoundedAt,
		&company.HomepageURL,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}
