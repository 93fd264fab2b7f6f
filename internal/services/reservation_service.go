package services

import (
	"context"
	"fmt"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationCreate carries the renter-supplied booking attributes. Pricing
// context (dailyRate, ownerId) is snapshotted from the vehicle, never taken
// from the caller.
type ReservationCreate struct {
	VehicleID     primitive.ObjectID `json:"vehicle_id" validate:"required"`
	StartDate     string             `json:"start_date" validate:"required,rental_date"`
	EndDate       string             `json:"end_date" validate:"required,rental_date"`
	TotalDays     int                `json:"total_days" validate:"required,gt=0"`
	TotalAmount   float64            `json:"total_amount" validate:"required,gt=0"`
	RenterMessage string             `json:"renter_message"`
}

type ReservationService interface {
	// Create books a vehicle for a renter. The reservation snapshots the
	// vehicle's dailyRate and ownerId at this moment; later vehicle edits do
	// not touch it. Initial status is always pending.
	Create(ctx context.Context, renterExternalID string, req *ReservationCreate) (primitive.ObjectID, error)

	// ListByUser returns both sides of the user's ledger: rentals they booked
	// (vehicle enriched with its owner) and bookings against their vehicles
	// (vehicle enriched with the renter).
	ListByUser(ctx context.Context, userExternalID string) (*models.UserReservations, error)

	// UpdateStatus patches status and owner message unconditionally; any
	// status may follow any other.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReservationStatus, ownerMessage string) (primitive.ObjectID, error)
}

type reservationService struct {
	reservationRepo interfaces.ReservationRepository
	vehicleRepo     interfaces.VehicleRepository
	userRepo        interfaces.UserRepository
	logger          *logger.Logger
}

func NewReservationService(
	reservationRepo interfaces.ReservationRepository,
	vehicleRepo interfaces.VehicleRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		userRepo:        userRepo,
		logger:          log,
	}
}

func (s *reservationService) Create(ctx context.Context, renterExternalID string, req *ReservationCreate) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, renterExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("renter: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	reservation := &models.Reservation{
		VehicleID:     req.VehicleID,
		RenterID:      renterExternalID,
		OwnerID:       vehicle.OwnerID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalDays:     req.TotalDays,
		DailyRate:     vehicle.DailyRate,
		TotalAmount:   req.TotalAmount,
		Status:        models.ReservationStatusPending,
		RenterMessage: req.RenterMessage,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(renterExternalID).
		WithVehicleID(vehicle.ID).
		WithReservationID(reservation.ID).
		Info("Reservation created")

	return reservation.ID, nil
}

func (s *reservationService) ListByUser(ctx context.Context, userExternalID string) (*models.UserReservations, error) {
	rented, err := s.reservationRepo.ListByRenter(ctx, userExternalID)
	if err != nil {
		return nil, err
	}

	owned, err := s.reservationRepo.ListByOwner(ctx, userExternalID)
	if err != nil {
		return nil, err
	}

	result := &models.UserReservations{
		Rentals:  make([]*models.RenterReservation, 0, len(rented)),
		Bookings: make([]*models.OwnerReservation, 0, len(owned)),
	}

	for _, r := range rented {
		entry := &models.RenterReservation{Reservation: *r}
		if vehicle, err := s.vehicleRepo.GetByID(ctx, r.VehicleID); err == nil {
			rv := &models.RentedVehicle{Vehicle: *vehicle}
			if owner, err := s.userRepo.GetByExternalID(ctx, vehicle.OwnerID); err == nil {
				rv.Owner = owner
			}
			entry.Vehicle = rv
		}
		result.Rentals = append(result.Rentals, entry)
	}

	for _, r := range owned {
		entry := &models.OwnerReservation{Reservation: *r}
		if vehicle, err := s.vehicleRepo.GetByID(ctx, r.VehicleID); err == nil {
			bv := &models.BookedVehicle{Vehicle: *vehicle}
			if renter, err := s.userRepo.GetByExternalID(ctx, r.RenterID); err == nil {
				bv.Renter = renter
			}
			entry.Vehicle = bv
		}
		result.Bookings = append(result.Bookings, entry)
	}

	return result, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReservationStatus, ownerMessage string) (primitive.ObjectID, error) {
	updates := map[string]interface{}{
		"status": status,
	}
	if ownerMessage != "" {
		updates["owner_message"] = ownerMessage
	}

	if err := s.reservationRepo.Update(ctx, id, updates); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithReservationID(id).WithField("status", string(status)).Info("Reservation status updated")

	return id, nil
}
