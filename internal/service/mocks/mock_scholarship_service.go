package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
)

type MockScholarshipService struct {
	mock.Mock
}

func (m *MockScholarshipService) scholarship(args mock.Arguments) (*model.Scholarship, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scholarship), args.Error(1)
}

func (m *MockScholarshipService) Create(ctx context.Context, in model.ScholarshipInput) (*model.Scholarship, error) {
	return m.scholarship(m.Called(ctx, in))
}

func (m *MockScholarshipService) Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scholarship), args.Error(1)
}

func (m *MockScholarshipService) Get(ctx context.Context, id string) (*model.Scholarship, error) {
	return m.scholarship(m.Called(ctx, id))
}

func (m *MockScholarshipService) Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error) {
	return m.scholarship(m.Called(ctx, id, upd))
}

func (m *MockScholarshipService) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
