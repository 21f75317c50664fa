package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-research/internal/domain"
)

// MemoRepository defines persistence access for per-stock notes.
type MemoRepository interface {
	Upsert(ctx context.Context, memo *domain.Memo) error
	GetByUserAndStock(ctx context.Context, userCode, stockCode string) (*domain.Memo, error)
}

type memoRepository struct {
	pool *pgxpool.Pool
}

// NewMemoRepository returns a Postgres-backed implementation.
func NewMemoRepository(pool *pgxpool.Pool) MemoRepository {
	return &memoRepository{pool: pool}
}

func (r *memoRepository) Upsert(ctx context.Context, memo *domain.Memo) error {
	const query = `
        INSERT INTO memo (user_code, stock_code, content)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_code, stock_code) DO UPDATE SET
            content=EXCLUDED.content,
            updated_at=NOW()
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		memo.UserCode,
		memo.StockCode,
		memo.Content,
	).Scan(&memo.ID, &memo.CreatedAt, &memo.UpdatedAt)
}

func (r *memoRepository) GetByUserAndStock(ctx context.Context, userCode, stockCode string) (*domain.Memo, error) {
	const query = `
        SELECT id, user_code, stock_code, content, created_at, updated_at
        FROM memo WHERE user_code=$1 AND stock_code=$2`

	var memo domain.Memo
	if err := r.pool.QueryRow(ctx, query, userCode, stockCode).Scan(
		&memo.ID,
		&memo.UserCode,
		&memo.StockCode,
		&memo.Content,
		&memo.CreatedAt,
		&memo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &memo, nil
}
