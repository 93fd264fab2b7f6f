package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserType string

const (
	UserTypeGuest UserType = "guest"
	UserTypeHost  UserType = "host"
	UserTypeBoth  UserType = "both"
)

// User is the application profile behind an identity-provider account.
// ExternalID is the opaque identifier issued by the identity provider and is
// unique across all users.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ExternalID   string             `json:"external_id" bson:"external_id" validate:"required"`
	Name         string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Rating       *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	TotalRentals int                `json:"total_rentals" bson:"total_rentals"`
	MemberSince  *time.Time         `json:"member_since,omitempty" bson:"member_since,omitempty"`
	ProfileImage string             `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	UserType     UserType           `json:"user_type" bson:"user_type" validate:"required,user_type"`
}

// UserUpdate carries the fields a profile patch may set. Nil means "no
// change", never "clear".
type UserUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	UserType     *UserType `json:"user_type,omitempty" validate:"omitempty,user_type"`
}
