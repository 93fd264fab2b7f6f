package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error

	// Find is the existence lookup for the unique (user, vehicle) pair.
	// Returns services.ErrNotFound when no favorite matches.
	Find(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (*models.Favorite, error)

	ListByUser(ctx context.Context, userExternalID string) ([]*models.Favorite, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
