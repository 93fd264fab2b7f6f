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

type reservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) interfaces.ReservationRepository {
	return &reservationRepository{
		collection: db.Collection("reservations"),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt

	_, err := r.collection.InsertOne(ctx, reservation)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("reservation %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterExternalID string) ([]*models.Reservation, error) {
	return r.findReservations(ctx, bson.M{"renter_id": renterExternalID})
}

func (r *reservationRepository) ListByOwner(ctx context.Context, ownerExternalID string) ([]*models.Reservation, error) {
	return r.findReservations(ctx, bson.M{"owner_id": ownerExternalID})
}

func (r *reservationRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation %s: %w", id.Hex(), services.ErrNotFound)
	}

	return nil
}

func (r *reservationRepository) findReservations(ctx context.Context, filter bson.M) ([]*models.Reservation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*models.Reservation
	for cursor.Next(ctx) {
		var reservation models.Reservation
		if err := cursor.Decode(&reservation); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, cursor.Err()
}
