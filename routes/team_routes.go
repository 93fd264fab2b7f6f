package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTeamRoutes sets up routes for team matching
func SetupTeamRoutes(r *gin.RouterGroup, teamHandler *shared.TeamHandler, jwtSecret string) {
	// Public team browsing
	r.GET("/teams", teamHandler.ListTeams)

	protected := r.Group("")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		protected.POST("/teams", teamHandler.CreateTeam)
		protected.POST("/teams/:id/applications", teamHandler.ApplyToTeam)
		protected.GET("/teams/:id/applications", teamHandler.ListTeamApplications)

		protected.GET("/driver-profile", teamHandler.GetMyDriverProfile)
		protected.PUT("/driver-profile", teamHandler.UpsertDriverProfile)
	}
}
