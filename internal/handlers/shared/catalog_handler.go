package handlers

import (
	"strconv"

	"renegaderace/internal/models"
	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListVehicles returns active vehicles matching the query filters
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	var filter models.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid filters: "+err.Error())
		return
	}

	vehicles, err := h.catalogService.ListVehicles(c.Request.Context(), &filter)
	if err != nil {
		serviceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved successfully", vehicles)
}

// GetVehicle returns one vehicle enriched with its owner and track
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.catalogService.GetVehicleByID(c.Request.Context(), vehicleID)
	if err != nil {
		serviceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// GetFeaturedVehicles returns the most recently listed active vehicles
func (h *CatalogHandler) GetFeaturedVehicles(c *gin.Context) {
	limit := utils.FeaturedVehicleLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	vehicles, err := h.catalogService.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		serviceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Featured vehicles retrieved successfully", vehicles)
}

// CreateVehicle lists a new vehicle owned by the caller
func (h *CatalogHandler) CreateVehicle(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	// OwnerID comes from the authenticated identity, never the body.
	vehicle.OwnerID = externalID

	if errs := validators.ValidateStruct(&vehicle); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.catalogService.CreateVehicle(c.Request.Context(), externalID, &vehicle)
	if err != nil {
		serviceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", gin.H{"id": id})
}

// ListTracks returns all active tracks
func (h *CatalogHandler) ListTracks(c *gin.Context) {
	tracks, err := h.catalogService.ListTracks(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "Track")
		return
	}

	utils.SuccessResponse(c, "Tracks retrieved successfully", tracks)
}

// GetTrack returns one track by id
func (h *CatalogHandler) GetTrack(c *gin.Context) {
	trackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid track ID")
		return
	}

	track, err := h.catalogService.GetTrack(c.Request.Context(), trackID)
	if err != nil {
		serviceErrorResponse(c, err, "Track")
		return
	}

	utils.SuccessResponse(c, "Track retrieved successfully", track)
}

// CreateTrack registers a new track
func (h *CatalogHandler) CreateTrack(c *gin.Context) {
	var track models.Track
	if err := c.ShouldBindJSON(&track); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&track); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.catalogService.CreateTrack(c.Request.Context(), &track)
	if err != nil {
		serviceErrorResponse(c, err, "Track")
		return
	}

	utils.CreatedResponse(c, "Track created successfully", gin.H{"id": id})
}

// UpdateTrack replaces a track's mutable attributes
func (h *CatalogHandler) UpdateTrack(c *gin.Context) {
	trackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid track ID")
		return
	}

	var track models.Track
	if err := c.ShouldBindJSON(&track); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&track); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	if err := h.catalogService.UpdateTrack(c.Request.Context(), trackID, &track); err != nil {
		serviceErrorResponse(c, err, "Track")
		return
	}

	utils.SuccessResponse(c, "Track updated successfully", gin.H{"id": trackID})
}

// DeactivateTrack soft-deletes a track; existing vehicles keep referencing it
func (h *CatalogHandler) DeactivateTrack(c *gin.Context) {
	trackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid track ID")
		return
	}

	if err := h.catalogService.DeactivateTrack(c.Request.Context(), trackID); err != nil {
		serviceErrorResponse(c, err, "Track")
		return
	}

	utils.SuccessResponse(c, "Track deactivated successfully", gin.H{"id": trackID})
}
