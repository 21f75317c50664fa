package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failure modes. The HTTP boundary collapses all of these
// into 401; they stay distinct here for logging and metrics.
var (
	ErrMalformed    = errors.New("auth: malformed token")
	ErrBadSignature = errors.New("auth: bad token signature")
	ErrExpired      = errors.New("auth: token expired")
)

// Claims describes the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed JWTs. The secret key is
// read-only after construction, so a single manager is safe for
// concurrent use across requests.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager with the process-wide secret and the
// default token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the default token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue builds and signs a token for the subject. A ttl of zero or less
// yields a token that is already expired; issuance does not reject it,
// verification does.
func (tm *TokenManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("auth: subject is required")
	}

	now := tm.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	// Return the expiry as encoded on the wire (second precision), so
	// callers see the same instant verification will check against.
	return signed, claims.ExpiresAt.Time, nil
}

// IssueDefault signs a token with the configured default lifetime.
func (tm *TokenManager) IssueDefault(subject string) (string, time.Time, error) {
	return tm.Issue(subject, tm.ttl)
}

// Verify parses the wire value and checks signature and expiry. Failures
// map to exactly one of ErrMalformed, ErrBadSignature or ErrExpired.
// Signature comparison inside the HMAC method is constant-time.
//
// Expiry is checked here rather than by the parser: the library treats
// now == exp as expired, while a token is meant to remain valid through
// its exact expiry instant and lapse only after it.
func (tm *TokenManager) Verify(wire string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(wire, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadSignature
		}
		return tm.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrBadSignature
		}
		return nil, ErrMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrMalformed
	}
	if tm.now().After(claims.ExpiresAt.Time) {
		return nil, ErrExpired
	}
	return claims, nil
}

// RemainingValidity reports how long the token stays valid. It runs the
// full verification first and propagates its failure modes, so callers
// cannot read a remaining duration off a forged or expired token.
func (tm *TokenManager) RemainingValidity(wire string) (time.Duration, error) {
	claims, err := tm.Verify(wire)
	if err != nil {
		return 0, err
	}
	remaining := claims.ExpiresAt.Time.Sub(tm.now())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
