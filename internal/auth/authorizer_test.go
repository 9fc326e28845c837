package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
	"scholarstream/internal/repository/mocks"
)

func TestAuthorizer_Authorize(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{ID: "u1", Email: "admin@example.com", Role: model.RoleAdmin}
	applicant := &model.User{ID: "u2", Email: "ada@example.com", Role: model.RoleApplicant}

	t.Run("role matches", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", ctx, admin.Email).Return(admin, nil)

		u, err := NewAuthorizer(users).Authorize(ctx, &Claims{Email: admin.Email}, model.RoleAdmin, model.RoleModerator)

		require.NoError(t, err)
		assert.Equal(t, admin, u)
		users.AssertExpectations(t)
	})

	t.Run("role mismatch", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", ctx, applicant.Email).Return(applicant, nil)

		_, err := NewAuthorizer(users).Authorize(ctx, &Claims{Email: applicant.Email}, model.RoleAdmin, model.RoleModerator)

		assert.True(t, apperror.Is(err, apperror.KindForbidden))
		assert.EqualError(t, err, "Forbidden: Admin or Moderator access required")
	})

	t.Run("no roles means any user", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", ctx, applicant.Email).Return(applicant, nil)

		u, err := NewAuthorizer(users).Authorize(ctx, &Claims{Email: applicant.Email})

		require.NoError(t, err)
		assert.Equal(t, applicant.ID, u.ID)
	})

	t.Run("missing email", func(t *testing.T) {
		users := new(mocks.MockUserRepository)

		_, err := NewAuthorizer(users).Authorize(ctx, &Claims{}, model.RoleAdmin)

		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
		assert.EqualError(t, err, "Unauthorized access")
		users.AssertNotCalled(t, "FindByEmail")
	})

	t.Run("user not found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

		_, err := NewAuthorizer(users).Authorize(ctx, &Claims{Email: "ghost@example.com"}, model.RoleAdmin)

		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.EqualError(t, err, "User not found")
	})

	t.Run("store failure", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", ctx, admin.Email).Return(nil, errors.New("conn reset"))

		_, err := NewAuthorizer(users).Authorize(ctx, &Claims{Email: admin.Email}, model.RoleAdmin)

		assert.True(t, apperror.Is(err, apperror.KindInternal))
	})
}

func TestForbiddenMessage(t *testing.T) {
	assert.Equal(t, "Forbidden: Admin access required", ForbiddenMessage(model.RoleAdmin))
	assert.Equal(t, "Forbidden: Moderator access required", ForbiddenMessage(model.RoleModerator))
}
