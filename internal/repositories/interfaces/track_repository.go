package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackRepository interface {
	Create(ctx context.Context, track *models.Track) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Track, error)
	ListActive(ctx context.Context) ([]*models.Track, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}
