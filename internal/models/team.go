package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team is a racing team looking for drivers.
type Team struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID        string             `json:"owner_id" bson:"owner_id"`
	Name           string             `json:"name" bson:"name" validate:"required"`
	Description    string             `json:"description" bson:"description" validate:"required"`
	LogoURL        string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	Location       string             `json:"location" bson:"location" validate:"required"`
	Experience     string             `json:"experience" bson:"experience" validate:"required"`
	Specialties    []string           `json:"specialties" bson:"specialties"`
	AvailableSeats int                `json:"available_seats" bson:"available_seats" validate:"gte=0"`
	Requirements   string             `json:"requirements" bson:"requirements"`
	ContactInfo    string             `json:"contact_info" bson:"contact_info" validate:"required"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// TeamFilter enumerates the recognized team listing filters.
type TeamFilter struct {
	Location   string `json:"location" form:"location"`
	Experience string `json:"experience" form:"experience"`
}

// DriverProfile is a driver's pitch to teams. One profile per user.
type DriverProfile struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID              string             `json:"user_id" bson:"user_id" validate:"required"`
	Bio                 string             `json:"bio" bson:"bio" validate:"required"`
	Experience          string             `json:"experience" bson:"experience" validate:"required"`
	Licenses            []string           `json:"licenses" bson:"licenses"`
	PreferredCategories []string           `json:"preferred_categories" bson:"preferred_categories"`
	Availability        string             `json:"availability" bson:"availability"`
	Location            string             `json:"location" bson:"location" validate:"required"`
	ContactInfo         string             `json:"contact_info" bson:"contact_info" validate:"required"`
	IsActive            bool               `json:"is_active" bson:"is_active"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// TeamApplication is a driver's application to join a team.
type TeamApplication struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeamID           primitive.ObjectID `json:"team_id" bson:"team_id" validate:"required"`
	DriverID         string             `json:"driver_id" bson:"driver_id" validate:"required"`
	Status           ApplicationStatus  `json:"status" bson:"status"`
	Message          string             `json:"message" bson:"message" validate:"required"`
	DriverExperience string             `json:"driver_experience" bson:"driver_experience"`
	PreferredDates   string             `json:"preferred_dates" bson:"preferred_dates"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
