package handlers

import (
	"renegaderace/internal/models"
	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type getOrCreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	UserType models.UserType `json:"user_type" validate:"required,user_type"`
}

// GetOrCreateUser materializes the caller's profile on first login and is a
// no-op on every call after that.
func (h *UserHandler) GetOrCreateUser(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request getOrCreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.userService.GetOrCreate(c.Request.Context(), externalID, request.Name, request.Email, request.UserType)
	if err != nil {
		serviceErrorResponse(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User resolved successfully", gin.H{"id": id})
}

// GetMe returns the caller's profile
func (h *UserHandler) GetMe(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.userService.GetByExternalID(c.Request.Context(), externalID)
	if err != nil {
		serviceErrorResponse(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// UpdateMe patches the caller's profile; absent fields are left untouched
func (h *UserHandler) UpdateMe(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var patch models.UserUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&patch); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.userService.Update(c.Request.Context(), externalID, &patch)
	if err != nil {
		serviceErrorResponse(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User updated successfully", gin.H{"id": id})
}
