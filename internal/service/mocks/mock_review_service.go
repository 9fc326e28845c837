package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) review(args mock.Arguments) (*model.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	return m.review(m.Called(ctx, in))
}

func (m *MockReviewService) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewService) ForScholarship(ctx context.Context, scholarshipID string) (*service.ScholarshipReviews, error) {
	args := m.Called(ctx, scholarshipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScholarshipReviews), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	return m.review(m.Called(ctx, id))
}

func (m *MockReviewService) Update(ctx context.Context, id string, upd model.ReviewUpdate) (*model.Review, error) {
	return m.review(m.Called(ctx, id, upd))
}

func (m *MockReviewService) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
