package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/company-research/internal/auth"
	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/events"
	"github.com/spec-kit/company-research/internal/repository"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

// AuthService coordinates signup and login flows. Tokens are stateless:
// logout is a client-side concern and no credential is ever stored
// server-side.
type AuthService struct {
	members    repository.MemberRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, members repository.MemberRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		members:    members,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup registers a member and issues their first token.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*domain.Member, string, time.Time, error) {
	exists, err := s.members.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exists {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	member := &domain.Member{
		UserCode:     uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.IssueDefault(member.UserCode)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, member.UserCode, events.UserRegisteredPayload{Email: member.Email})
	return member, token, expiresAt, nil
}

// Login authenticates credentials and issues a token. Unknown email and
// wrong password produce the same error so callers cannot probe for
// registered addresses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Member, string, time.Time, error) {
	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if !auth.MatchesPassword(password, member.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	token, expiresAt, err := s.tokens.IssueDefault(member.UserCode)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, member.UserCode, nil)
	return member, token, expiresAt, nil
}

// VerifyToken checks a presented token and returns the backing member.
func (s *AuthService) VerifyToken(ctx context.Context, wire string) (*domain.Member, error) {
	claims, err := s.tokens.Verify(wire)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	member, err := s.members.GetByUserCode(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid token")
		}
		return nil, err
	}
	return member, nil
}

// Logout is a no-op: tokens are stateless and expire on their own.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userCode string, payload interface{}) {
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
