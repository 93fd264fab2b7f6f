package services

import (
	"context"
	"testing"
	"time"

	"renegaderace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReservationFixture() (ReservationService, *fakeReservationRepo, *fakeVehicleRepo, *fakeUserRepo) {
	reservationRepo := &fakeReservationRepo{}
	vehicleRepo := &fakeVehicleRepo{}
	userRepo := newFakeUserRepo()
	svc := NewReservationService(reservationRepo, vehicleRepo, userRepo, newTestLogger())
	return svc, reservationRepo, vehicleRepo, userRepo
}

func TestCreateReservationSnapshotsPricing(t *testing.T) {
	svc, reservationRepo, vehicleRepo, userRepo := newReservationFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	id, err := svc.Create(ctx, "renter_1", &ReservationCreate{
		VehicleID:   vehicle.ID,
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-12",
		TotalDays:   2,
		TotalAmount: 2000,
	})
	require.NoError(t, err)

	// Reprice the vehicle after booking.
	require.NoError(t, vehicleRepo.Update(ctx, vehicle.ID, map[string]interface{}{"daily_rate": 9999.0}))

	stored, err := reservationRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.DailyRate, "daily rate is frozen at booking time")
	assert.Equal(t, "owner_1", stored.OwnerID, "owner is snapshotted from the vehicle")
	assert.Equal(t, models.ReservationStatusPending, stored.Status)
}

func TestCreateReservationUnknownRenterOrVehicle(t *testing.T) {
	svc, _, vehicleRepo, userRepo := newReservationFixture()
	ctx := context.Background()

	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	_, err := svc.Create(ctx, "nobody", &ReservationCreate{VehicleID: vehicle.ID, TotalDays: 1, TotalAmount: 1000})
	assert.ErrorIs(t, err, ErrNotFound)

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	_, err = svc.Create(ctx, "renter_1", &ReservationCreate{VehicleID: primitive.NewObjectID(), TotalDays: 1, TotalAmount: 1000})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUserSplitsLedger(t *testing.T) {
	svc, _, vehicleRepo, userRepo := newReservationFixture()
	ctx := context.Background()

	// "pivot" rents from owner_a and owns a vehicle rented by renter_b.
	seedUser(userRepo, "pivot", "Pivot", models.UserTypeBoth)
	seedUser(userRepo, "owner_a", "Owner A", models.UserTypeHost)
	seedUser(userRepo, "renter_b", "Renter B", models.UserTypeGuest)

	rentedVehicle := seedVehicle(vehicleRepo, "owner_a", "Porsche", "911", 1000, true, time.Now())
	ownedVehicle := seedVehicle(vehicleRepo, "pivot", "BMW", "M2", 400, true, time.Now())

	_, err := svc.Create(ctx, "pivot", &ReservationCreate{
		VehicleID: rentedVehicle.ID, StartDate: "2026-09-01", EndDate: "2026-09-02", TotalDays: 1, TotalAmount: 1000,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "renter_b", &ReservationCreate{
		VehicleID: ownedVehicle.ID, StartDate: "2026-09-05", EndDate: "2026-09-06", TotalDays: 1, TotalAmount: 400,
	})
	require.NoError(t, err)

	ledger, err := svc.ListByUser(ctx, "pivot")
	require.NoError(t, err)

	require.Len(t, ledger.Rentals, 1)
	require.NotNil(t, ledger.Rentals[0].Vehicle)
	require.NotNil(t, ledger.Rentals[0].Vehicle.Owner)
	assert.Equal(t, "Owner A", ledger.Rentals[0].Vehicle.Owner.Name)

	require.Len(t, ledger.Bookings, 1)
	require.NotNil(t, ledger.Bookings[0].Vehicle)
	require.NotNil(t, ledger.Bookings[0].Vehicle.Renter)
	assert.Equal(t, "Renter B", ledger.Bookings[0].Vehicle.Renter.Name)
}

func TestUpdateStatusPatches(t *testing.T) {
	svc, reservationRepo, vehicleRepo, userRepo := newReservationFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	id, err := svc.Create(ctx, "renter_1", &ReservationCreate{
		VehicleID: vehicle.ID, StartDate: "2026-09-01", EndDate: "2026-09-02", TotalDays: 1, TotalAmount: 1000,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, id, models.ReservationStatusConfirmed, "See you at the gate")
	require.NoError(t, err)

	stored, err := reservationRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, stored.Status)
	assert.Equal(t, "See you at the gate", stored.OwnerMessage)

	// Empty message leaves the previous one in place.
	_, err = svc.UpdateStatus(ctx, id, models.ReservationStatusCompleted, "")
	require.NoError(t, err)

	stored, err = reservationRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCompleted, stored.Status)
	assert.Equal(t, "See you at the gate", stored.OwnerMessage)
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	svc, _, _, _ := newReservationFixture()

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), models.ReservationStatusCancelled, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
