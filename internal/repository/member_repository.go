package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-research/internal/domain"
)

// MemberRepository defines persistence access for registered members.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetByUserCode(ctx context.Context, userCode string) (*domain.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO member (user_code, email, password_hash, name)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.UserCode,
		member.Email,
		member.PasswordHash,
		member.Name,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	const query = `
        SELECT user_code, email, password_hash, name, created_at, updated_at
        FROM member WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *memberRepository) GetByUserCode(ctx context.Context, userCode string) (*domain.Member, error) {
	const query = `
        SELECT user_code, email, password_hash, name, created_at, updated_at
        FROM member WHERE user_code=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userCode))
}

func (r *memberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM member WHERE email=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *memberRepository) scanOne(row pgx.Row) (*domain.Member, error) {
	var member domain.Member
	if err := row.Scan(
		&member.UserCode,
		&member.Email,
		&member.PasswordHash,
		&member.Name,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}
