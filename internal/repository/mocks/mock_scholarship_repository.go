package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
)

type MockScholarshipRepository struct {
	mock.Mock
}

func (m *MockScholarshipRepository) Create(ctx context.Context, s *model.Scholarship) (*model.Scholarship, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) FindByID(ctx context.Context, id string) (*model.Scholarship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
