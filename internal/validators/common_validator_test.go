package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rentalWindow struct {
	StartDate string `validate:"required,rental_date"`
	EndDate   string `validate:"omitempty,rental_date"`
}

func TestRentalDateTag(t *testing.T) {
	assert.Empty(t, ValidateStruct(&rentalWindow{StartDate: "2026-09-10"}))
	assert.Empty(t, ValidateStruct(&rentalWindow{StartDate: "2026-09-10", EndDate: "2026-09-12"}))

	errs := ValidateStruct(&rentalWindow{StartDate: "09/10/2026"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "rental_date", errs[0].Tag)

	errs = ValidateStruct(&rentalWindow{StartDate: ""})
	assert.Len(t, errs, 1)
	assert.Equal(t, "required", errs[0].Tag)
}

type typedUser struct {
	UserType string `validate:"required,user_type"`
}

func TestUserTypeTag(t *testing.T) {
	for _, valid := range []string{"guest", "host", "both"} {
		assert.Empty(t, ValidateStruct(&typedUser{UserType: valid}), valid)
	}

	errs := ValidateStruct(&typedUser{UserType: "admin"})
	assert.Len(t, errs, 1)
}

type statusChange struct {
	Status string `validate:"required,reservation_status"`
}

func TestReservationStatusTag(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		assert.Empty(t, ValidateStruct(&statusChange{Status: valid}), valid)
	}

	errs := ValidateStruct(&statusChange{Status: "archived"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "reservation_status", errs[0].Tag)
}

type idHolder struct {
	ID string `validate:"omitempty,object_id"`
}

func TestObjectIDTag(t *testing.T) {
	assert.Empty(t, ValidateStruct(&idHolder{ID: "507f1f77bcf86cd799439011"}))
	assert.Empty(t, ValidateStruct(&idHolder{}))
	assert.Len(t, ValidateStruct(&idHolder{ID: "not-an-id"}), 1)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidateStruct(&rentalWindow{StartDate: "bad", EndDate: "worse"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "StartDate")
	assert.Contains(t, errs.Error(), "EndDate")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  <b>hello</b>  "))
}
