package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountScholarships(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountApplications(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) SumApplicationFees(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepository) ApplicationsByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCount), args.Error(1)
}
