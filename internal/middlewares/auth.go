package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/jwt"
	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/services"
)

// Tokener defines the credential extraction and parsing the middleware needs.
type Tokener interface {
	GetBearerFromRequest(ctx context.Context, r *http.Request) string
	GetSessionFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BearerVerifier resolves opaque API tokens to principals.
type BearerVerifier interface {
	VerifyBearer(ctx context.Context, token string) (*models.Principal, error)
}

type authErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthMiddleware populates the request-scoped principal from either a
// bearer credential (Authorization header, X-API-Token header or api_token
// query parameter, in that order) or the session cookie. Bearer values are
// tried as a session JWT first, then as a stored API token. Requests with
// no resolvable identity get 401; deactivated accounts get 403.
func AuthMiddleware(tokener Tokener, verifier BearerVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if bearer := tokener.GetBearerFromRequest(ctx, r); bearer != "" {
				if claims, err := tokener.GetClaims(ctx, bearer); err == nil {
					principal := models.Principal{UserID: claims.UserID, Name: claims.Name, Email: claims.Email}
					next.ServeHTTP(w, r.WithContext(SetPrincipalToContext(ctx, principal)))
					return
				}

				principal, err := verifier.VerifyBearer(ctx, bearer)
				if err != nil {
					writeAuthError(w, err)
					return
				}
				next.ServeHTTP(w, r.WithContext(SetPrincipalToContext(ctx, *principal)))
				return
			}

			sessionToken, err := tokener.GetSessionFromRequest(ctx, r)
			if err != nil {
				writeAuthError(w, services.ErrInvalidToken)
				return
			}
			claims, err := tokener.GetClaims(ctx, sessionToken)
			if err != nil {
				logger.Log.Infow("session token rejected", "error", err)
				writeAuthError(w, services.ErrInvalidToken)
				return
			}

			principal := models.Principal{UserID: claims.UserID, Name: claims.Name, Email: claims.Email}
			next.ServeHTTP(w, r.WithContext(SetPrincipalToContext(ctx, principal)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, services.ErrAccountDeactivated):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(authErrorResponse{Message: "Account deactivated"})
	case errors.Is(err, services.ErrInvalidToken):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(authErrorResponse{Message: "Please login first"})
	default:
		logger.Log.Errorw("authorization failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(authErrorResponse{Message: "Server error. Please try again later."})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var principalKey = contextKey{}

// SetPrincipalToContext stores the authenticated principal in the context.
func SetPrincipalToContext(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext retrieves the principal from the context. The
// second return is false when the request was not authenticated.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(models.Principal)
	return principal, ok
}
