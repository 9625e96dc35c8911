package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/services"
)

// TokenLoginer defines the interface that the token-login service must implement.
type TokenLoginer interface {
	TokenLogin(ctx context.Context, email, password, ipAddress, userAgent string) (*services.LoginResult, error)
}

// TokenLoginResponse represents a successful token login response
// swagger:model TokenLoginResponse
type TokenLoginResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Redirect string    `json:"redirect"`
	APIToken string    `json:"api_token"`
	User     LoginUser `json:"user"`
}

// NewTokenLoginHandler returns an HTTP handler that authenticates like
// login and additionally mints a long-lived API token for mobile or
// external access.
// @Summary Login and mint an API token
// @Description Authenticate by email and password; returns an API token usable as a bearer credential
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.TokenLoginResponse "Session established, API token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid credentials or deactivated account"
// @Router /login/token [post]
func NewTokenLoginHandler(svc TokenLoginer, cookieName string, cookieTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Message: "Invalid request body"})
			return
		}

		result, err := svc.TokenLogin(r.Context(), req.Email, req.Password, middlewares.ClientIP(r), r.UserAgent())
		if err != nil {
			writeLoginError(w, err)
			return
		}

		setSessionCookies(w, result, cookieName, cookieTTL)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenLoginResponse{
			Success:  true,
			Message:  "Login successful!",
			Redirect: "/dashboard",
			APIToken: result.APIToken,
			User: LoginUser{
				ID:    result.Principal.UserID,
				Name:  result.Principal.Name,
				Email: result.Principal.Email,
			},
		})
	}
}
