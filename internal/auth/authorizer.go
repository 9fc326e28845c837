package auth

import (
	"context"
	"errors"
	"strings"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

// UserFinder is the lookup the Authorizer needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authorizer resolves the caller's user record and checks its role.
// It reads the store on every call.
type Authorizer struct {
	users UserFinder
}

func NewAuthorizer(users UserFinder) *Authorizer {
	return &Authorizer{users: users}
}

// Authorize returns the user behind claims if their role is one of roles.
// With no roles given, any existing user passes.
func (a *Authorizer) Authorize(ctx context.Context, claims *Claims, roles ...model.Role) (*model.User, error) {
	if claims == nil || claims.Email == "" {
		return nil, apperror.Unauthorized("Unauthorized access")
	}

	u, err := a.users.FindByEmail(ctx, claims.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(roles) == 0 {
		return u, nil
	}
	for _, r := range roles {
		if u.Role == r {
			return u, nil
		}
	}
	return nil, apperror.Forbidden(ForbiddenMessage(roles...))
}

// ForbiddenMessage names the roles a route requires, e.g.
// "Forbidden: Admin or Moderator access required".
func ForbiddenMessage(roles ...model.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return "Forbidden: " + strings.Join(names, " or ") + " access required"
}
