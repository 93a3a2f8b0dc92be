package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Malmeu/car-manager-server/internal/service"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, r io.Reader, vehicleID, docType, originalName, contentType string, size int64) (*service.UploadResult, error) {
	args := m.Called(ctx, r, vehicleID, docType, originalName, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
