package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Malmeu/car-manager-server/internal/model"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) AddCondition(ctx context.Context, vehicleID string, cond model.Condition) error {
	args := m.Called(ctx, vehicleID, cond)
	return args.Error(0)
}

func (m *MockVehicleRepository) RemoveCondition(ctx context.Context, vehicleID, conditionID string) error {
	args := m.Called(ctx, vehicleID, conditionID)
	return args.Error(0)
}

func (m *MockVehicleRepository) AttachDocument(ctx context.Context, vehicleID string, doc model.Document) error {
	args := m.Called(ctx, vehicleID, doc)
	return args.Error(0)
}
