package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is a user's bookmark on a vehicle. The (UserID, VehicleID) pair is
// unique; a compound index backs the existence check in the service layer.
type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id" validate:"required"`
	VehicleID primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// FavoriteVehicle is the vehicle-with-track shape returned on a favorites
// listing.
type FavoriteVehicle struct {
	Vehicle `bson:",inline"`
	Track   *Track `json:"track"`
}

// FavoriteWithVehicle joins a favorite to its (still existing) vehicle.
type FavoriteWithVehicle struct {
	Favorite `bson:",inline"`
	Vehicle  *FavoriteVehicle `json:"vehicle"`
}
