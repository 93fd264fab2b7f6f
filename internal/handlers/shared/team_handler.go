package handlers

import (
	"renegaderace/internal/models"
	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns active teams matching the query filters
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var filter models.TeamFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid filters: "+err.Error())
		return
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), &filter)
	if err != nil {
		serviceErrorResponse(c, err, "Team")
		return
	}

	// Pagination is opt-in; without page params the full listing comes back.
	if c.Query("page") != "" || c.Query("page_size") != "" {
		params := utils.GetPaginationParams(c)
		total := int64(len(teams))
		page := utils.Paginate(teams, params)
		meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
		utils.SuccessResponseWithMeta(c, "Teams retrieved successfully", page, meta)
		return
	}

	utils.SuccessResponse(c, "Teams retrieved successfully", teams)
}

// CreateTeam registers a team owned by the caller
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var team models.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&team); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.teamService.CreateTeam(c.Request.Context(), externalID, &team)
	if err != nil {
		serviceErrorResponse(c, err, "Team")
		return
	}

	utils.CreatedResponse(c, "Team created successfully", gin.H{"id": id})
}

// GetMyDriverProfile returns the caller's driver profile
func (h *TeamHandler) GetMyDriverProfile(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	profile, err := h.teamService.GetDriverProfile(c.Request.Context(), externalID)
	if err != nil {
		serviceErrorResponse(c, err, "Driver profile")
		return
	}

	utils.SuccessResponse(c, "Driver profile retrieved successfully", profile)
}

// UpsertDriverProfile creates or replaces the caller's driver profile
func (h *TeamHandler) UpsertDriverProfile(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var profile models.DriverProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	// UserID comes from the authenticated identity, never the body.
	profile.UserID = externalID

	if errs := validators.ValidateStruct(&profile); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.teamService.UpsertDriverProfile(c.Request.Context(), externalID, &profile)
	if err != nil {
		serviceErrorResponse(c, err, "Driver profile")
		return
	}

	utils.SuccessResponse(c, "Driver profile saved successfully", gin.H{"id": id})
}

type applyToTeamRequest struct {
	Message          string `json:"message" validate:"required"`
	DriverExperience string `json:"driver_experience"`
	PreferredDates   string `json:"preferred_dates"`
}

// ApplyToTeam submits the caller's application to a team
func (h *TeamHandler) ApplyToTeam(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	teamID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid team ID")
		return
	}

	var request applyToTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	application := &models.TeamApplication{
		Message:          request.Message,
		DriverExperience: request.DriverExperience,
		PreferredDates:   request.PreferredDates,
	}

	id, err := h.teamService.ApplyToTeam(c.Request.Context(), teamID, externalID, application)
	if err != nil {
		serviceErrorResponse(c, err, "Application")
		return
	}

	utils.CreatedResponse(c, "Application submitted successfully", gin.H{"id": id})
}

// ListTeamApplications returns the applications received by a team
func (h *TeamHandler) ListTeamApplications(c *gin.Context) {
	teamID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid team ID")
		return
	}

	applications, err := h.teamService.ListTeamApplications(c.Request.Context(), teamID)
	if err != nil {
		serviceErrorResponse(c, err, "Application")
		return
	}

	utils.SuccessResponse(c, "Applications retrieved successfully", applications)
}
