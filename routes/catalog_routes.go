package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up routes for the vehicle and track catalog
func SetupCatalogRoutes(r *gin.RouterGroup, catalogHandler *shared.CatalogHandler, jwtSecret string) {
	// Public browse routes (no auth required)
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", catalogHandler.ListVehicles)
		vehicles.GET("/featured", catalogHandler.GetFeaturedVehicles)
		vehicles.GET("/:id", catalogHandler.GetVehicle)
	}

	tracks := r.Group("/tracks")
	{
		tracks.GET("", catalogHandler.ListTracks)
		tracks.GET("/:id", catalogHandler.GetTrack)
	}

	// Protected listing management
	protected := r.Group("")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		protected.POST("/vehicles", middleware.HostRequired(), catalogHandler.CreateVehicle)
		protected.POST("/tracks", catalogHandler.CreateTrack)
		protected.PUT("/tracks/:id", catalogHandler.UpdateTrack)
		protected.DELETE("/tracks/:id", catalogHandler.DeactivateTrack)
	}
}
