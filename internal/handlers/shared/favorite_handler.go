package handlers

import (
	"renegaderace/internal/services"
	"renegaderace/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// ListFavorites returns the caller's bookmarked vehicles
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), externalID)
	if err != nil {
		serviceErrorResponse(c, err, "Favorite")
		return
	}

	utils.SuccessResponse(c, "Favorites retrieved successfully", favorites)
}

// AddFavorite bookmarks a vehicle for the caller
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(c.Param("vehicle_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	id, err := h.favoriteService.Add(c.Request.Context(), externalID, vehicleID)
	if err != nil {
		serviceErrorResponse(c, err, "Favorite")
		return
	}

	utils.CreatedResponse(c, "Favorite added successfully", gin.H{"id": id})
}

// RemoveFavorite removes the caller's bookmark on a vehicle
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(c.Param("vehicle_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	id, err := h.favoriteService.Remove(c.Request.Context(), externalID, vehicleID)
	if err != nil {
		serviceErrorResponse(c, err, "Favorite")
		return
	}

	utils.SuccessResponse(c, "Favorite removed successfully", gin.H{"id": id})
}

// CheckFavorite tells whether the caller has bookmarked a vehicle
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(c.Param("vehicle_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	favorited, err := h.favoriteService.IsFavorited(c.Request.Context(), externalID, vehicleID)
	if err != nil {
		serviceErrorResponse(c, err, "Favorite")
		return
	}

	utils.SuccessResponse(c, "Favorite status retrieved successfully", gin.H{"is_favorited": favorited})
}
