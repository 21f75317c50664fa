package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type principalContextKey struct{}

const principalLocalKey = "auth_principal"

// ContextWithPrincipal attaches the authenticated principal to the
// context. Identity is always request-scoped; there is no process-wide
// security context.
func ContextWithPrincipal(ctx context.Context, principal *Principal) context.Context {
	if principal == nil {
		return ctx
	}
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext extracts the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	principal, ok := ctx.Value(principalContextKey{}).(*Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

// PrincipalFromRequest retrieves the principal stored by the
// authenticator for this request.
func PrincipalFromRequest(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalLocalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func storePrincipal(c *fiber.Ctx, principal *Principal) {
	c.Locals(principalLocalKey, principal)
	c.SetUserContext(ContextWithPrincipal(c.UserContext(), principal))
}
