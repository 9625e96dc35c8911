package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purlyedit/vastu-vision/internal/models"
)

func validRegistration() Registration {
	return Registration{
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		Gender:          "female",
		DateOfBirth:     "1990-04-12",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(reg *Registration)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(reg *Registration) {},
		},
		{
			name:    "MissingFirstName",
			mutate:  func(reg *Registration) { reg.FirstName = "" },
			wantErr: "All required fields must be filled",
		},
		{
			name:    "MissingPassword",
			mutate:  func(reg *Registration) { reg.Password = "" },
			wantErr: "All required fields must be filled",
		},
		{
			name:    "BadEmail",
			mutate:  func(reg *Registration) { reg.Email = "not-an-email" },
			wantErr: "Invalid email format",
		},
		{
			name:    "PhoneTooShort",
			mutate:  func(reg *Registration) { reg.Phone = "98765" },
			wantErr: "Invalid phone number",
		},
		{
			name:    "PhoneBadLeadingDigit",
			mutate:  func(reg *Registration) { reg.Phone = "1234567890" },
			wantErr: "Invalid phone number",
		},
		{
			name: "PasswordMismatch",
			mutate: func(reg *Registration) {
				reg.ConfirmPassword = "different"
			},
			wantErr: "Passwords do not match",
		},
		{
			name: "PasswordTooShort",
			mutate: func(reg *Registration) {
				reg.Password = "short"
				reg.ConfirmPassword = "short"
			},
			wantErr: "Password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			err := ValidateRegistration(reg, 8)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateRegistrationFirstFieldViolationWins(t *testing.T) {
	// Both email and phone are bad; the Email field comes first in the
	// struct, so its message is the one reported.
	reg := validRegistration()
	reg.Email = "not-an-email"
	reg.Phone = "12345"

	err := ValidateRegistration(reg, 8)
	assert.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
}

func TestValidateRegistrationConfiguredMinimumInMessage(t *testing.T) {
	reg := validRegistration()
	reg.Password = "tenchars10"
	reg.ConfirmPassword = "tenchars10"

	assert.NoError(t, ValidateRegistration(reg, 8))

	err := ValidateRegistration(reg, 12)
	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Password must be at least 12 characters", err.Error())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("98765 43210"))
	assert.Equal(t, "9876543210", NormalizePhone("  98765\t43210 "))
	assert.Equal(t, "9876543210", NormalizePhone("9876543210"))
}

func TestValidateSpace(t *testing.T) {
	rooms := []models.RoomInput{{Name: "Living Room", Zone: "north"}}

	tests := []struct {
		name        string
		plotSize    string
		roomType    string
		orientation string
		floorNumber int
		rooms       []models.RoomInput
		wantErr     string
	}{
		{
			name:     "Valid",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 2, rooms: rooms,
		},
		{
			name:     "GroundFloor",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 0, rooms: rooms,
		},
		{
			name:     "TopFloor",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 100, rooms: rooms,
		},
		{
			name:     "MissingDetails",
			plotSize: "", roomType: "apartment", orientation: "north",
			floorNumber: 2, rooms: rooms,
			wantErr: "All space details are required",
		},
		{
			name:     "NegativeFloor",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: -1, rooms: rooms,
			wantErr: "Floor number must be between 0 and 100",
		},
		{
			name:     "FloorAboveMax",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 101, rooms: rooms,
			wantErr: "Floor number must be between 0 and 100",
		},
		{
			name:     "NoRooms",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 2, rooms: nil,
			wantErr: "At least one room is required",
		},
		{
			name:     "BlankRoomName",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 2, rooms: []models.RoomInput{{Name: "   ", Zone: "north"}},
			wantErr: "Room name and zone required",
		},
		{
			name:     "InvalidZone",
			plotSize: "30x40", roomType: "apartment", orientation: "north",
			floorNumber: 2, rooms: []models.RoomInput{{Name: "Study", Zone: "up"}},
			wantErr: "Invalid room zone: up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpace(tt.plotSize, tt.roomType, tt.orientation, tt.floorNumber, tt.rooms)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(&Error{Message: "bad input"}))
	assert.True(t, IsValidation(fmt.Errorf("handler: %w", &Error{Message: "bad input"})))
	assert.False(t, IsValidation(errors.New("bad input")))
	assert.False(t, IsValidation(nil))
}

func TestValidateStructCustomTags(t *testing.T) {
	type payload struct {
		Phone string `validate:"indian_phone"`
		Zone  string `validate:"room_zone"`
		Email string `validate:"basic_email"`
		Name  string `validate:"notblank"`
	}

	valid := payload{Phone: "9876543210", Zone: "north", Email: "asha@example.com", Name: "Study"}
	assert.NoError(t, ValidateStruct(valid))

	bad := valid
	bad.Phone = "12345"
	assert.Error(t, ValidateStruct(bad))

	bad = valid
	bad.Zone = "sideways"
	assert.Error(t, ValidateStruct(bad))

	bad = valid
	bad.Email = "not-an-email"
	assert.Error(t, ValidateStruct(bad))

	bad = valid
	bad.Name = "   "
	assert.Error(t, ValidateStruct(bad))
}
