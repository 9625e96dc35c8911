package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/services"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, reg validation.Registration, ipAddress string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	// example: Asha
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// example: Rao
	LastName string `json:"lastName"`

	// Email
	// required: true
	// example: asha@example.com
	Email string `json:"email"`

	// 10-digit mobile number
	// required: true
	// example: 9876543210
	Phone string `json:"phone"`

	// Gender
	// required: true
	// example: female
	Gender string `json:"gender"`

	// Date of birth (YYYY-MM-DD)
	// example: 1990-04-12
	DateOfBirth string `json:"dateOfBirth"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Password confirmation
	// required: true
	// example: secret123
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email and phone must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failure or duplicate email/phone"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Message: "Invalid request body"})
			return
		}

		userID, err := svc.Register(r.Context(), validation.Registration{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Phone:           req.Phone,
			Gender:          req.Gender,
			DateOfBirth:     req.DateOfBirth,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		}, middlewares.ClientIP(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Message: "Email already registered"})
			case errors.Is(err, services.ErrPhoneTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Message: "Phone number already registered"})
			case validation.IsValidation(err):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Message: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Message: "Server error. Please try again later."})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			Message: "Registration successful! Please login.",
			UserID:  userID,
		})
	}
}
