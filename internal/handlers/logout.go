package handlers

import (
	"context"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/jwt"
	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID int64, rememberToken, ipAddress string) error
}

// LogoutTokener parses the session cookie so logout works without the auth
// middleware: an expired session must still be clearable.
type LogoutTokener interface {
	GetSessionFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// NewLogoutHandler returns an HTTP handler that destroys the session,
// clears the remember-me token and redirects to the landing page.
// @Summary Logout
// @Description Clears the session and remember-me cookies and redirects
// @Tags auth
// @Success 302 {string} string "Redirect to /"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokener LogoutTokener, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var rememberToken string
		if cookie, err := r.Cookie(RememberCookieName); err == nil {
			rememberToken = cookie.Value
		}

		if sessionToken, err := tokener.GetSessionFromRequest(ctx, r); err == nil {
			if claims, err := tokener.GetClaims(ctx, sessionToken); err == nil {
				if err := svc.Logout(ctx, claims.UserID, rememberToken, middlewares.ClientIP(r)); err != nil {
					logger.Log.Errorw("logout failed", "user_id", claims.UserID, "err", err)
				}
			}
		}

		expireCookie(w, cookieName)
		expireCookie(w, RememberCookieName)

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
