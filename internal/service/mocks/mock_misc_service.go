package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"scholarstream/internal/model"
	"scholarstream/internal/service"
	"scholarstream/internal/storage"
)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminStats), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, price *float64) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*service.UploadedImage, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedImage), args.Error(1)
}

func (m *MockImageService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
