package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)

	// ListAll returns every vehicle in store-native (insertion) order; listing
	// filters are applied in memory by the catalog service.
	ListAll(ctx context.Context) ([]*models.Vehicle, error)

	ListByOwner(ctx context.Context, ownerExternalID string) ([]*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
