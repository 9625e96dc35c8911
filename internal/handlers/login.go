package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/services"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password, ipAddress, userAgent string, rememberMe bool) (*services.LoginResult, error)
}

// RememberCookieName carries the remember-me token.
const RememberCookieName = "remember_token"

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: asha@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Mint a 30-day remember-me token
	// example: true
	RememberMe bool `json:"rememberMe"`
}

// LoginUser is the user summary returned on successful login.
type LoginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Redirect string    `json:"redirect"`
	User     LoginUser `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for user login. On success the
// session token is set as an HttpOnly cookie; with rememberMe a 30-day
// remember-token cookie is set as well.
// @Summary User login
// @Description Authenticate by email and password and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session established"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid credentials or deactivated account"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookieName string, cookieTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Message: "Invalid request body"})
			return
		}

		result, err := svc.Login(r.Context(), req.Email, req.Password, middlewares.ClientIP(r), r.UserAgent(), req.RememberMe)
		if err != nil {
			writeLoginError(w, err)
			return
		}

		setSessionCookies(w, result, cookieName, cookieTTL)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Success:  true,
			Message:  "Login successful!",
			Redirect: "/dashboard",
			User: LoginUser{
				ID:    result.Principal.UserID,
				Name:  result.Principal.Name,
				Email: result.Principal.Email,
			},
		})
	}
}

func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(LoginErrorResponse{Message: "Invalid email or password"})
	case errors.Is(err, services.ErrAccountDeactivated):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(LoginErrorResponse{Message: "Account is deactivated"})
	case validation.IsValidation(err):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(LoginErrorResponse{Message: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(LoginErrorResponse{Message: "Server error. Please try again later."})
	}
}

func setSessionCookies(w http.ResponseWriter, result *services.LoginResult, cookieName string, cookieTTL time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    result.SessionToken,
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if result.RememberToken != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     RememberCookieName,
			Value:    result.RememberToken,
			Path:     "/",
			MaxAge:   int(services.RememberTokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// principalFromContext is a small shared helper for authenticated handlers.
func principalFromContext(ctx context.Context) (models.Principal, bool) {
	return middlewares.GetPrincipalFromContext(ctx)
}
