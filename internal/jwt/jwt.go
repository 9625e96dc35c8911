package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/purlyedit/vastu-vision/internal/models"
)

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Token expiration duration
	CookieName string        // Session cookie carrying the token
}

// Claims are the session claims carried by a signed token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration, cookieName string) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		Exp:        expiration,
		CookieName: cookieName,
	}
}

// Generate creates a session token for the given principal.
func (j *JWT) Generate(ctx context.Context, principal models.Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: principal.UserID,
		Name:   principal.Name,
		Email:  principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

// GetBearerFromRequest extracts an API-style credential from the request,
// checking the Authorization header, the X-API-Token header and the
// api_token query parameter in that precedence order. Returns an empty
// string when none is present.
func (j *JWT) GetBearerFromRequest(ctx context.Context, r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if token := r.Header.Get("X-API-Token"); token != "" {
		return token
	}
	return r.URL.Query().Get("api_token")
}

// GetSessionFromRequest extracts the session token from the session cookie.
func (j *JWT) GetSessionFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(j.CookieName)
	if err != nil {
		return "", errors.New("session cookie missing")
	}
	return cookie.Value, nil
}
