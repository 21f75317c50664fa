package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/observability"
	apperrors "github.com/spec-kit/company-research/pkg/util/errorutil"
)

const outcomeLocalKey = "auth_outcome"

const bearerPrefix = "Bearer "

// OutcomeKind discriminates the result of the per-request check.
type OutcomeKind string

const (
	OutcomeNotRequired   OutcomeKind = "not_required"
	OutcomeAuthenticated OutcomeKind = "authenticated"
	OutcomeRejected      OutcomeKind = "rejected"
)

// RejectReason is the externally relevant rejection class. The concrete
// verification failure (malformed, bad signature, expired, principal
// not found) is logged internally but never leaks to the caller.
type RejectReason string

const (
	ReasonMissing RejectReason = "missing"
	ReasonInvalid RejectReason = "invalid"
)

// AuthOutcome is the terminal classification of one request. Exactly one
// of the three kinds holds; Principal is set only when authenticated.
type AuthOutcome struct {
	Kind      OutcomeKind
	Principal *Principal
	Reason    RejectReason
}

// Authenticator gates every inbound request exactly once. Public paths
// pass through untouched; protected paths must carry a verifiable,
// unexpired bearer token whose subject resolves to a principal.
type Authenticator struct {
	tokens  *TokenManager
	lookup  IdentityLookup
	policy  *AccessPolicy
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewAuthenticator constructs the middleware.
func NewAuthenticator(tokens *TokenManager, lookup IdentityLookup, policy *AccessPolicy, logger *zap.Logger, metrics *observability.Metrics) *Authenticator {
	return &Authenticator{tokens: tokens, lookup: lookup, policy: policy, logger: logger, metrics: metrics}
}

// Handle classifies the request path, verifies the credential when one
// is required, resolves the principal and publishes it into the request
// scope. Any rejection short-circuits before downstream handlers run.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if !a.policy.RequiresAuth(path) {
		// Public path: a present token is ignored, not authenticated.
		a.finish(c, AuthOutcome{Kind: OutcomeNotRequired})
		return c.Next()
	}

	raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return a.reject(c, ReasonMissing, path, nil)
	}

	claims, err := a.tokens.Verify(raw)
	if err != nil {
		return a.reject(c, ReasonInvalid, path, err)
	}

	principal, err := a.lookup.Resolve(c.UserContext(), claims.Subject)
	if err != nil {
		// "Not found" and "store unavailable" collapse at this boundary;
		// the distinction survives only in the log.
		return a.reject(c, ReasonInvalid, path, err)
	}

	storePrincipal(c, principal)
	a.finish(c, AuthOutcome{Kind: OutcomeAuthenticated, Principal: principal})
	return c.Next()
}

// OutcomeFromRequest returns the classification recorded for this
// request, if the authenticator ran.
func OutcomeFromRequest(c *fiber.Ctx) (AuthOutcome, bool) {
	val := c.Locals(outcomeLocalKey)
	if val == nil {
		return AuthOutcome{}, false
	}
	outcome, ok := val.(AuthOutcome)
	return outcome, ok
}

func (a *Authenticator) finish(c *fiber.Ctx, outcome AuthOutcome) {
	c.Locals(outcomeLocalKey, outcome)
	if a.metrics != nil {
		a.metrics.RecordAuthOutcome(string(outcome.Kind))
	}
}

func (a *Authenticator) reject(c *fiber.Ctx, reason RejectReason, path string, cause error) error {
	a.finish(c, AuthOutcome{Kind: OutcomeRejected, Reason: reason})
	if a.logger != nil {
		a.logger.Debug("request rejected",
			zap.String("path", path),
			zap.String("reason", string(reason)),
			zap.String("cause", causeLabel(cause)),
		)
	}
	if reason == ReasonMissing {
		return apperrors.NewUnauthorized("missing credentials")
	}
	return apperrors.NewUnauthorized("invalid credentials")
}

// causeLabel names the internal failure mode for diagnostics.
func causeLabel(err error) string {
	switch {
	case err == nil:
		return "missing_credential"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrPrincipalNotFound):
		return "principal_not_found"
	default:
		return "lookup_failed"
	}
}

// bearerToken extracts the credential from an Authorization header
// value. The "Bearer " prefix match is exact and case-sensitive;
// anything else counts as no credential at all.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
