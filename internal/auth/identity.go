package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/company-research/internal/repository"
)

// ErrPrincipalNotFound indicates the token subject has no backing account.
var ErrPrincipalNotFound = errors.New("auth: principal not found")

// Principal is the resolved identity for a request. It is created fresh
// per request and travels only inside that request's context.
type Principal struct {
	SubjectID string
	Email     string
	Name      string
	Roles     []string
}

// IdentityLookup resolves a token subject to a Principal.
type IdentityLookup interface {
	Resolve(ctx context.Context, subject string) (*Principal, error)
}

// StoreIdentityLookup resolves subjects against the member store.
type StoreIdentityLookup struct {
	members repository.MemberRepository
}

// NewStoreIdentityLookup builds a store-backed lookup.
func NewStoreIdentityLookup(members repository.MemberRepository) *StoreIdentityLookup {
	return &StoreIdentityLookup{members: members}
}

// Resolve loads the member behind the subject. The context deadline of
// the surrounding request bounds the store call.
func (l *StoreIdentityLookup) Resolve(ctx context.Context, subject string) (*Principal, error) {
	member, err := l.members.GetByUserCode(ctx, subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	return &Principal{
		SubjectID: member.UserCode,
		Email:     member.Email,
		Name:      member.Name,
		Roles:     []string{"user"},
	}, nil
}

// StubIdentityLookup fabricates a principal for any non-empty subject
// without checking existence. It exists for tests and for running the
// service without a member store wired in.
type StubIdentityLookup struct{}

// Resolve returns a synthetic principal carrying the subject.
func (StubIdentityLookup) Resolve(_ context.Context, subject string) (*Principal, error) {
	if subject == "" {
		return nil, ErrPrincipalNotFound
	}
	return &Principal{SubjectID: subject, Roles: []string{"user"}}, nil
}
