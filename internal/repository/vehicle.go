package repository

import (
	"context"

	"github.com/Malmeu/car-manager-server/internal/model"
)

// VehicleRepository defines data access for vehicle documents.
// No business logic here — strictly persistence operations. Implementations
// signal a missing vehicle with mongo.ErrNoDocuments so the service layer can
// translate it, mirroring how driver sentinels are handled elsewhere.
type VehicleRepository interface {
	// FindByID returns the vehicle document with the given key.
	FindByID(ctx context.Context, id string) (*model.Vehicle, error)

	// AddCondition appends one condition to the vehicle's conditions array
	// atomically, so concurrent appends cannot overwrite each other.
	AddCondition(ctx context.Context, vehicleID string, cond model.Condition) error

	// RemoveCondition removes every condition whose id matches. Removing a
	// condition that does not exist is not an error; only a missing vehicle is.
	RemoveCondition(ctx context.Context, vehicleID, conditionID string) error

	// AttachDocument appends upload metadata to the vehicle's documents array.
	AttachDocument(ctx context.Context, vehicleID string, doc model.Document) error
}
