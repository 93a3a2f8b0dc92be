package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Malmeu/car-manager-server/internal/model"
	"github.com/Malmeu/car-manager-server/internal/repository"
)

const vehiclesCollection = "vehicles"

// VehicleMongo is a MongoDB implementation of repository.VehicleRepository.
// Array mutations use $push/$pull so two concurrent writers against the same
// vehicle never lose each other's update.
type VehicleMongo struct {
	coll *mongo.Collection
}

// NewVehicleMongo creates a new VehicleMongo repository.
func NewVehicleMongo(db *mongo.Database) *VehicleMongo {
	return &VehicleMongo{coll: db.Collection(vehiclesCollection)}
}

var _ repository.VehicleRepository = (*VehicleMongo)(nil)

// FindByID fetches a single vehicle document by its key.
// mongo.ErrNoDocuments passes through untranslated.
func (r *VehicleMongo) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// AddCondition appends cond to the vehicle's conditions array. A vehicle that
// matched no document yields mongo.ErrNoDocuments.
func (r *VehicleMongo) AddCondition(ctx context.Context, vehicleID string, cond model.Condition) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": vehicleID},
		bson.M{"$push": bson.M{"conditions": cond}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveCondition pulls every condition entry whose id equals conditionID.
// A matched vehicle with nothing to pull is a silent no-op success.
func (r *VehicleMongo) RemoveCondition(ctx context.Context, vehicleID, conditionID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": vehicleID},
		bson.M{"$pull": bson.M{"conditions": bson.M{model.ConditionIDKey: conditionID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AttachDocument appends upload metadata to the vehicle's documents array.
func (r *VehicleMongo) AttachDocument(ctx context.Context, vehicleID string, doc model.Document) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": vehicleID},
		bson.M{"$push": bson.M{"documents": doc}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
