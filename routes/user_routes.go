package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up routes for the user directory
func SetupUserRoutes(r *gin.RouterGroup, userHandler *shared.UserHandler, jwtSecret string) {
	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret))
	{
		users.POST("", userHandler.GetOrCreateUser)
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateMe)
	}
}
