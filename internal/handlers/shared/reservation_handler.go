package handlers

import (
	"renegaderace/internal/models"
	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationHandler struct {
	reservationService services.ReservationService
}

func NewReservationHandler(reservationService services.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// CreateReservation books a vehicle for the caller
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request services.ReservationCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.reservationService.Create(c.Request.Context(), externalID, &request)
	if err != nil {
		serviceErrorResponse(c, err, "Reservation")
		return
	}

	utils.CreatedResponse(c, "Reservation created successfully", gin.H{"id": id})
}

// ListMyReservations returns both sides of the caller's ledger: rentals they
// booked and bookings taken against their vehicles.
func (h *ReservationHandler) ListMyReservations(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), externalID)
	if err != nil {
		serviceErrorResponse(c, err, "Reservation")
		return
	}

	utils.SuccessResponse(c, "Reservations retrieved successfully", reservations)
}

type updateReservationStatusRequest struct {
	Status       models.ReservationStatus `json:"status" validate:"required,reservation_status"`
	OwnerMessage string                   `json:"owner_message"`
}

// UpdateReservationStatus moves a reservation to a new lifecycle status
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	reservationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid reservation ID")
		return
	}

	var request updateReservationStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.reservationService.UpdateStatus(c.Request.Context(), reservationID, request.Status, request.OwnerMessage)
	if err != nil {
		serviceErrorResponse(c, err, "Reservation")
		return
	}

	utils.SuccessResponse(c, "Reservation updated successfully", gin.H{"id": id})
}
