package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReservationRoutes sets up routes for reservations
func SetupReservationRoutes(r *gin.RouterGroup, reservationHandler *shared.ReservationHandler, jwtSecret string) {
	reservations := r.Group("/reservations")
	reservations.Use(middleware.AuthRequired(jwtSecret))
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("", reservationHandler.ListMyReservations)
		reservations.PUT("/:id/status", reservationHandler.UpdateReservationStatus)
	}
}
