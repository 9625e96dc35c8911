// Package validation is the single home of the input rules shared by the
// transport and service layers, so the same rule is never duplicated with
// drifting scopes.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/purlyedit/vastu-vision/internal/models"
)

// Error is a recoverable input validation failure. Its message is safe to
// echo back to the caller.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsValidation reports whether err is (or wraps) a validation Error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var (
	validate *validator.Validate

	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("indian_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("room_zone", func(fl validator.FieldLevel) bool {
		return models.IsValidZone(fl.Field().String())
	})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateStruct runs tag-level validation on any annotated struct.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// NormalizePhone strips whitespace before the pattern check, matching how
// clients tend to submit numbers with separators.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

// Registration holds the fields checked before a user row is created.
type Registration struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,basic_email"`
	Phone           string `validate:"required,indian_phone"`
	Gender          string `validate:"required"`
	DateOfBirth     string `validate:"-"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// ValidateRegistration applies the registration rules and returns the
// first violation. The phone field is expected pre-normalized; the
// password minimum is configured, so it is checked outside the tags.
func ValidateRegistration(reg Registration, passwordMinLength int) error {
	if err := ValidateStruct(reg); err != nil {
		return registrationError(err)
	}
	if err := validate.Var(reg.Password, fmt.Sprintf("min=%d", passwordMinLength)); err != nil {
		return &Error{Message: fmt.Sprintf("Password must be at least %d characters", passwordMinLength)}
	}
	return nil
}

// registrationError maps the first field violation to its user-facing
// message. Field order in the Registration struct fixes which violation
// wins when several fields are bad.
func registrationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "required":
		return &Error{Message: "All required fields must be filled"}
	case fe.Field() == "Email":
		return &Error{Message: "Invalid email format"}
	case fe.Field() == "Phone":
		return &Error{Message: "Invalid phone number"}
	case fe.Field() == "ConfirmPassword":
		return &Error{Message: "Passwords do not match"}
	default:
		return &Error{Message: "All required fields must be filled"}
	}
}

// Floor number bounds accepted for a space.
const (
	MinFloorNumber = 0
	MaxFloorNumber = 100
)

// spaceSubmission carries the space rules; rooms are checked per element
// through the tags on models.RoomInput.
type spaceSubmission struct {
	PlotSize    string             `validate:"required"`
	RoomType    string             `validate:"required"`
	Orientation string             `validate:"required"`
	FloorNumber int                `validate:"gte=0,lte=100"`
	Rooms       []models.RoomInput `validate:"min=1,dive"`
}

// ValidateSpace checks a space submission before any write is attempted.
func ValidateSpace(plotSize, roomType, orientation string, floorNumber int, rooms []models.RoomInput) error {
	err := ValidateStruct(spaceSubmission{
		PlotSize:    plotSize,
		RoomType:    roomType,
		Orientation: orientation,
		FloorNumber: floorNumber,
		Rooms:       rooms,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "gte" || fe.Tag() == "lte":
		return &Error{Message: "Floor number must be between 0 and 100"}
	case fe.Field() == "Rooms" && fe.Tag() == "min":
		return &Error{Message: "At least one room is required"}
	case fe.Tag() == "room_zone":
		zone, _ := fe.Value().(string)
		return &Error{Message: "Invalid room zone: " + zone}
	case fe.Tag() == "notblank" || fe.Field() == "Zone":
		return &Error{Message: "Room name and zone required"}
	default:
		return &Error{Message: "All space details are required"}
	}
}
