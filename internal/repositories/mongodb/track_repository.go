package mongodb

import (
	"context"
	"fmt"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type trackRepository struct {
	collection *mongo.Collection
}

func NewTrackRepository(db *mongo.Database) interfaces.TrackRepository {
	return &trackRepository{
		collection: db.Collection("tracks"),
	}
}

func (r *trackRepository) Create(ctx context.Context, track *models.Track) error {
	track.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, track)
	if err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}

	return nil
}

func (r *trackRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Track, error) {
	var track models.Track
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&track)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("track %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}

	return &track, nil
}

func (r *trackRepository) ListActive(ctx context.Context) ([]*models.Track, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to find tracks: %w", err)
	}
	defer cursor.Close(ctx)

	var tracks []*models.Track
	for cursor.Next(ctx) {
		var track models.Track
		if err := cursor.Decode(&track); err != nil {
			return nil, fmt.Errorf("failed to decode track: %w", err)
		}
		tracks = append(tracks, &track)
	}

	return tracks, cursor.Err()
}

func (r *trackRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("track %s: %w", id.Hex(), services.ErrNotFound)
	}

	return nil
}
