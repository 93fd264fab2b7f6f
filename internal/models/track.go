package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Track is a racing circuit that vehicles are rented at. Tracks are created
// by operators and soft-deactivated, never hard-deleted.
type Track struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
}
