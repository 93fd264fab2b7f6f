package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddOn is an optional extra an owner bundles with a rental (tuition,
// transponder, extra tire set).
type AddOn struct {
	Name        string  `json:"name" bson:"name" validate:"required"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	IsRequired  bool    `json:"is_required" bson:"is_required"`
}

// Vehicle is a track-focused car listed for rent. OwnerID holds the owner's
// external identity-provider id, not a Mongo id.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID      string             `json:"owner_id" bson:"owner_id" validate:"required"`
	TrackID      primitive.ObjectID `json:"track_id" bson:"track_id" validate:"required"`
	Make         string             `json:"make" bson:"make" validate:"required"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	Year         int                `json:"year" bson:"year" validate:"required,gte=1950"`
	DailyRate    float64            `json:"daily_rate" bson:"daily_rate" validate:"required,gt=0"`
	Description  string             `json:"description" bson:"description" validate:"required"`
	Horsepower   int                `json:"horsepower" bson:"horsepower" validate:"required,gt=0"`
	Transmission string             `json:"transmission" bson:"transmission" validate:"required"`
	Drivetrain   string             `json:"drivetrain" bson:"drivetrain" validate:"required"`
	Mileage      int                `json:"mileage" bson:"mileage" validate:"gte=0"`
	FuelType     string             `json:"fuel_type,omitempty" bson:"fuel_type,omitempty"`
	Color        string             `json:"color,omitempty" bson:"color,omitempty"`
	EngineType   string             `json:"engine_type,omitempty" bson:"engine_type,omitempty"`
	Amenities    []string           `json:"amenities" bson:"amenities"`
	Images       []string           `json:"images,omitempty" bson:"images,omitempty"`
	AddOns       []AddOn            `json:"add_ons,omitempty" bson:"add_ons,omitempty"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	IsApproved   *bool              `json:"is_approved,omitempty" bson:"is_approved,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// EnrichedVehicle joins the owner and track onto a vehicle for display.
// Missing owner or track records are tolerated as nil sub-fields.
type EnrichedVehicle struct {
	Vehicle `bson:",inline"`
	Owner   *User  `json:"owner"`
	Track   *Track `json:"track"`
}

// VehicleFilter enumerates the recognized listing filters; they are applied
// as an AND-conjunction over active vehicles.
type VehicleFilter struct {
	Search   string   `json:"search" form:"search"`
	Make     string   `json:"make" form:"make"`
	TrackID  string   `json:"track_id" form:"track_id"`
	MinPrice *float64 `json:"min_price" form:"min_price"`
	MaxPrice *float64 `json:"max_price" form:"max_price"`
}
