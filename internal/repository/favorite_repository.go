package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-research/internal/domain"
)

// FavoriteRepository defines persistence access for tracked companies.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	ListByUser(ctx context.Context, userCode string) ([]*domain.Favorite, error)
	GetByUserAndCorp(ctx context.Context, userCode, corpCode string) (*domain.Favorite, error)
	DeleteByUserAndStock(ctx context.Context, userCode, stockCode string) error
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository returns a Postgres-backed implementation.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	const query = `
        INSERT INTO favorite (user_code, corp_code, stock_code)
        VALUES ($1, $2, $3)
        RETURNING id, registered_at`

	return r.pool.QueryRow(ctx, query,
		favorite.UserCode,
		favorite.CorpCode,
		favorite.StockCode,
	).Scan(&favorite.ID, &favorite.RegisteredAt)
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userCode string) ([]*domain.Favorite, error) {
	const query = `
        SELECT id, user_code, corp_code, stock_code, registered_at
        FROM favorite WHERE user_code=$1
        ORDER BY registered_at DESC`

	rows, err := r.pool.Query(ctx, query, userCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		if err := rows.Scan(
			&favorite.ID,
			&favorite.UserCode,
			&favorite.CorpCode,
			&favorite.StockCode,
			&favorite.RegisteredAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, &favorite)
	}
	return favorites, rows.Err()
}

func (r *favoriteRepository) GetByUserAndCorp(ctx context.Context, userCode, corpCode string) (*domain.Favorite, error) {
	const query = `
        SELECT id, user_code, corp_code, stock_code, registered_at
        FROM favorite WHERE user_code=$1 AND corp_code=$2`

	var favorite domain.Favorite
	if err := r.pool.QueryRow(ctx, query, userCode, corpCode).Scan(
		&favorite.ID,
		&favorite.UserCode,
		&favorite.CorpCode,
		&favorite.StockCode,
		&favorite.RegisteredAt,
	); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) DeleteByUserAndStock(ctx context.Context, userCode, stockCode string) error {
	const query = `DELETE FROM favorite WHERE user_code=$1 AND stock_code=$2`

	cmd, err := r.pool.Exec(ctx, query, userCode, stockCode)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
