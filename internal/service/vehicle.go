package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Malmeu/car-manager-server/internal/model"
	"github.com/Malmeu/car-manager-server/internal/repository"
)

var (
	ErrVehicleIDRequired   = errors.New("vehicleId is required")
	ErrConditionIDRequired = errors.New("conditionId is required")
	ErrVehicleNotFound     = errors.New("vehicle not found")
)

// VehicleService defines the use cases around a vehicle document and its
// embedded conditions list.
type VehicleService interface {
	// Get returns the vehicle flattened into a single object. The conditions
	// key is always present, defaulting to an empty array.
	Get(ctx context.Context, vehicleID string) (map[string]any, error)

	// AddCondition tags the caller payload with a generated id and appends it
	// to the vehicle's conditions. Returns the created record.
	AddCondition(ctx context.Context, vehicleID string, payload map[string]any) (model.Condition, error)

	// RemoveCondition removes the condition with the given id. Removing an id
	// that is not present succeeds; only a missing vehicle is an error.
	RemoveCondition(ctx context.Context, vehicleID, conditionID string) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService constructs a new VehicleService.
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Get(ctx context.Context, vehicleID string) (map[string]any, error) {
	if vehicleID == "" {
		return nil, ErrVehicleIDRequired
	}
	v, err := s.repo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v.Flatten(), nil
}

func (s *vehicleService) AddCondition(ctx context.Context, vehicleID string, payload map[string]any) (model.Condition, error) {
	if vehicleID == "" {
		return nil, ErrVehicleIDRequired
	}

	// The generated id always wins over a caller-supplied one; uniqueness
	// within the document is guaranteed at insertion.
	cond := make(model.Condition, len(payload)+1)
	for k, val := range payload {
		cond[k] = val
	}
	cond[model.ConditionIDKey] = uuid.NewString()

	if err := s.repo.AddCondition(ctx, vehicleID, cond); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return cond, nil
}

func (s *vehicleService) RemoveCondition(ctx context.Context, vehicleID, conditionID string) error {
	if vehicleID == "" {
		return ErrVehicleIDRequired
	}
	if conditionID == "" {
		return ErrConditionIDRequired
	}
	if err := s.repo.RemoveCondition(ctx, vehicleID, conditionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrVehicleNotFound
		}
		return err
	}
	return nil
}
