package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	ListByRenter(ctx context.Context, renterExternalID string) ([]*models.Reservation, error)
	ListByOwner(ctx context.Context, ownerExternalID string) ([]*models.Reservation, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}
