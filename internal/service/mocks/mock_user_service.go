package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	return m.user(m.Called(ctx, in))
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserService) Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	return m.user(m.Called(ctx, id, upd))
}

func (m *MockUserService) UpdateRole(ctx context.Context, id string, role model.Role) (*model.User, error) {
	return m.user(m.Called(ctx, id, role))
}

func (m *MockUserService) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
