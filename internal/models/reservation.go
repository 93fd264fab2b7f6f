package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a rental booking between a renter and a vehicle owner.
// DailyRate and OwnerID are snapshotted from the vehicle at booking time, so
// later vehicle edits never change what was agreed.
//
// The usual lifecycle is pending -> confirmed -> completed, with cancelled
// reachable from pending or confirmed. Status updates are owner-driven and
// deliberately not restricted to those transitions.
type Reservation struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID     primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	RenterID      string             `json:"renter_id" bson:"renter_id" validate:"required"`
	OwnerID       string             `json:"owner_id" bson:"owner_id"`
	StartDate     string             `json:"start_date" bson:"start_date" validate:"required,rental_date"`
	EndDate       string             `json:"end_date" bson:"end_date" validate:"required,rental_date"`
	TotalDays     int                `json:"total_days" bson:"total_days" validate:"required,gt=0"`
	DailyRate     float64            `json:"daily_rate" bson:"daily_rate"`
	TotalAmount   float64            `json:"total_amount" bson:"total_amount" validate:"required,gt=0"`
	Status        ReservationStatus  `json:"status" bson:"status" validate:"omitempty,reservation_status"`
	RenterMessage string             `json:"renter_message,omitempty" bson:"renter_message,omitempty"`
	OwnerMessage  string             `json:"owner_message,omitempty" bson:"owner_message,omitempty"`
	PaymentID     string             `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	PaymentStatus string             `json:"payment_status,omitempty" bson:"payment_status,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// RentedVehicle is the vehicle shape a renter sees on their reservation: the
// vehicle plus its owner.
type RentedVehicle struct {
	Vehicle `bson:",inline"`
	Owner   *User `json:"owner"`
}

// BookedVehicle is the vehicle shape an owner sees on an incoming booking:
// the vehicle plus the renter.
type BookedVehicle struct {
	Vehicle `bson:",inline"`
	Renter  *User `json:"renter"`
}

// RenterReservation is a reservation from the renter's side of the ledger.
type RenterReservation struct {
	Reservation `bson:",inline"`
	Vehicle     *RentedVehicle `json:"vehicle"`
}

// OwnerReservation is a reservation from the owner's side of the ledger.
type OwnerReservation struct {
	Reservation `bson:",inline"`
	Vehicle     *BookedVehicle `json:"vehicle"`
}

// UserReservations holds both sides for one user: rentals they booked and
// bookings made against vehicles they own. The two vehicle shapes differ on
// purpose; callers handle each slice explicitly instead of probing one blob.
type UserReservations struct {
	Rentals  []*RenterReservation `json:"rentals"`
	Bookings []*OwnerReservation  `json:"bookings"`
}
