package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// GetByExternalID is a point lookup on the unique external_id index.
	// Returns services.ErrNotFound when no user matches.
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)

	// Update applies a partial patch to the user matching externalID.
	Update(ctx context.Context, externalID string, updates map[string]interface{}) error
}
