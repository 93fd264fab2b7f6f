package mongodb

import (
	"context"
	"fmt"
	"time"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewVehicleRepository(db *mongo.Database, cache services.CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

// ListAll returns the collection in natural order; the catalog service does
// the predicate filtering in memory.
func (r *vehicleRepository) ListAll(ctx context.Context) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, cursor.Err()
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerExternalID string) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerExternalID})
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, cursor.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), services.ErrNotFound)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), services.ErrNotFound)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

// Cache operations
func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache != nil {
		key := fmt.Sprintf("vehicle:%s", vehicle.ID.Hex())
		r.cache.Set(ctx, key, vehicle, services.VehicleCacheTTL)
	}
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, id string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	var vehicle models.Vehicle
	if err := r.cache.Get(ctx, fmt.Sprintf("vehicle:%s", id), &vehicle); err != nil {
		return nil
	}

	return &vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, id string) {
	if r.cache != nil {
		r.cache.Delete(ctx, fmt.Sprintf("vehicle:%s", id))
	}
}
