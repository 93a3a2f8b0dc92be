package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Malmeu/car-manager-server/internal/model"
)

type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Get(ctx context.Context, vehicleID string) (map[string]any, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockVehicleService) AddCondition(ctx context.Context, vehicleID string, payload map[string]any) (model.Condition, error) {
	args := m.Called(ctx, vehicleID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Condition), args.Error(1)
}

func (m *MockVehicleService) RemoveCondition(ctx context.Context, vehicleID, conditionID string) error {
	args := m.Called(ctx, vehicleID, conditionID)
	return args.Error(0)
}
