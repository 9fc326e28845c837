package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) application(args mock.Arguments) (*model.Application, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationService) list(args mock.Arguments) ([]model.Application, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationService) Create(ctx context.Context, in model.ApplicationInput) (*model.Application, error) {
	return m.application(m.Called(ctx, in))
}

func (m *MockApplicationService) List(ctx context.Context, f model.ApplicationFilter) ([]model.Application, error) {
	return m.list(m.Called(ctx, f))
}

func (m *MockApplicationService) ListByEmail(ctx context.Context, email string) ([]model.Application, error) {
	return m.list(m.Called(ctx, email))
}

func (m *MockApplicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	return m.application(m.Called(ctx, id))
}

func (m *MockApplicationService) Update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error) {
	return m.application(m.Called(ctx, id, upd))
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, id, status string, feedback *string) (*model.Application, error) {
	return m.application(m.Called(ctx, id, status, feedback))
}

func (m *MockApplicationService) UpdatePayment(ctx context.Context, id, paymentStatus string) (*model.Application, error) {
	return m.application(m.Called(ctx, id, paymentStatus))
}

func (m *MockApplicationService) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
