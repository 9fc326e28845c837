package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/auth"
	"scholarstream/internal/model"
)

const (
	ClaimsLocalKey = "auth_claims"
	UserLocalKey   = "auth_user"
)

// TokenVerifier validates the Authorization header value.
type TokenVerifier interface {
	Verify(header string) (*auth.Claims, error)
}

// RoleAuthorizer loads the caller and checks their role.
type RoleAuthorizer interface {
	Authorize(ctx context.Context, claims *auth.Claims, roles ...model.Role) (*model.User, error)
}

// RequireToken rejects requests without a valid bearer token and stores the
// decoded claims in locals.
func RequireToken(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := v.Verify(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// RequireRole must run after RequireToken. It stores the caller's user record
// in locals for the rest of the request.
func RequireRole(a RoleAuthorizer, roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := a.Authorize(c.UserContext(), ClaimsFrom(c), roles...)
		if err != nil {
			return err
		}
		c.Locals(UserLocalKey, u)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireToken, or nil.
func ClaimsFrom(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims
}

// UserFrom returns the user stored by RequireRole, or nil.
func UserFrom(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}
