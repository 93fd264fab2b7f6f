package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFavoriteRoutes sets up routes for vehicle bookmarks
func SetupFavoriteRoutes(r *gin.RouterGroup, favoriteHandler *shared.FavoriteHandler, jwtSecret string) {
	favorites := r.Group("/favorites")
	favorites.Use(middleware.AuthRequired(jwtSecret))
	{
		favorites.GET("", favoriteHandler.ListFavorites)
		favorites.POST("/:vehicle_id", favoriteHandler.AddFavorite)
		favorites.DELETE("/:vehicle_id", favoriteHandler.RemoveFavorite)
		favorites.GET("/:vehicle_id/status", favoriteHandler.CheckFavorite)
	}
}
