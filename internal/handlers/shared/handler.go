package handlers

import (
	"errors"

	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
)

// externalIDFromContext reads the authenticated identity set by the auth
// middleware.
func externalIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get("external_id")
	if !exists {
		return "", false
	}

	externalID, ok := value.(string)
	if !ok || externalID == "" {
		return "", false
	}
	return externalID, true
}

// serviceErrorResponse maps the service error taxonomy onto HTTP statuses.
func serviceErrorResponse(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrAlreadyExists):
		utils.ConflictResponse(c, resource+" already exists")
	default:
		utils.InternalServerErrorResponse(c)
	}
}

func respondValidationErrors(c *gin.Context, errs validators.ValidationErrors) {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Field] = e.Message
	}
	utils.ValidationErrorResponse(c, details)
}
