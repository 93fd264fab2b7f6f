package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("reservation_status", validateReservationStatus)
	validate.RegisterValidation("rental_date", validateRentalDate)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "phone_number":
		return "Invalid phone number format"
	case "user_type":
		return "User type must be guest, host, or both"
	case "reservation_status":
		return "Status must be pending, confirmed, completed, or cancelled"
	case "rental_date":
		return "Date must be in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}

	// E.164 format validation
	phoneRegex := regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	return phoneRegex.MatchString(phone)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch value {
	case "guest", "host", "both":
		return true
	}
	return false
}

func validateReservationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch value {
	case "pending", "confirmed", "completed", "cancelled":
		return true
	}
	return false
}

func validateRentalDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// Helper functions for common validations
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func SanitizeInput(input string) string {
	// Remove HTML tags and trim whitespace
	htmlRegex := regexp.MustCompile(`<[^>]*>`)
	cleaned := htmlRegex.ReplaceAllString(input, "")
	return strings.TrimSpace(cleaned)
}
