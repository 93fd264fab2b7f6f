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

type favoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) interfaces.FavoriteRepository {
	return &favoriteRepository{
		collection: db.Collection("favorites"),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	favorite.ID = primitive.NewObjectID()
	favorite.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, favorite)
	if err != nil {
		// The unique (user_id, vehicle_id) index closes the check-then-insert
		// race two concurrent adders could otherwise win together.
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("favorite: %w", services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Find(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.collection.FindOne(ctx, bson.M{
		"user_id":    userExternalID,
		"vehicle_id": vehicleID,
	}).Decode(&favorite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("favorite: %w", services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}

	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userExternalID string) ([]*models.Favorite, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userExternalID})
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favorites []*models.Favorite
	for cursor.Next(ctx) {
		var favorite models.Favorite
		if err := cursor.Decode(&favorite); err != nil {
			return nil, fmt.Errorf("failed to decode favorite: %w", err)
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, cursor.Err()
}

func (r *favoriteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("favorite %s: %w", id.Hex(), services.ErrNotFound)
	}

	return nil
}
