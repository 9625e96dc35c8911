package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidToken       = errors.New("invalid api token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByPhone(ctx context.Context, phone string) (*models.UserDB, error)
	GetByAPIToken(ctx context.Context, token string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, firstName, lastName, email, phone, gender string, dateOfBirth sql.NullTime, passwordHash string) (int64, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	SetAPIToken(ctx context.Context, userID int64, token string) error
}

// SessionTokenWriter defines write operations for remember-me tokens.
type SessionTokenWriter interface {
	Save(ctx context.Context, userID int64, token, ipAddress, userAgent string, expiresAt time.Time) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ActivityAppender appends audit trail rows.
type ActivityAppender interface {
	Append(ctx context.Context, userID int64, action, description, ipAddress string) error
}

// SessionGenerator mints signed session tokens.
type SessionGenerator interface {
	Generate(ctx context.Context, principal models.Principal) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RememberTokenTTL is how long a remember-me token stays valid.
const RememberTokenTTL = 30 * 24 * time.Hour

// AuthService handles registration, login and bearer verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	sessions    SessionTokenWriter
	activity    ActivityAppender
	jwt         SessionGenerator
	kafkaWriter KafkaWriter

	passwordMinLength int
	bcryptCost        int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	sessions SessionTokenWriter,
	activity ActivityAppender,
	jwt SessionGenerator,
	kafkaWriter KafkaWriter,
	passwordMinLength int,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		reader:            reader,
		writer:            writer,
		sessions:          sessions,
		activity:          activity,
		jwt:               jwt,
		kafkaWriter:       kafkaWriter,
		passwordMinLength: passwordMinLength,
		bcryptCost:        bcryptCost,
	}
}

// publishEvent publishes an audit event to Kafka.
func (svc *AuthService) publishEvent(ctx context.Context, event models.ActivityEvent) {
	publishActivityEvent(ctx, svc.kafkaWriter, event)
}

// Register validates and creates a new user, returning its id.
func (svc *AuthService) Register(ctx context.Context, reg validation.Registration, ipAddress string) (int64, error) {
	reg.Phone = validation.NormalizePhone(reg.Phone)

	if err := validation.ValidateRegistration(reg, svc.passwordMinLength); err != nil {
		return 0, err
	}

	existing, err := svc.reader.GetByEmail(ctx, reg.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "error", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	existing, err = svc.reader.GetByPhone(ctx, reg.Phone)
	if err != nil {
		logger.Log.Errorw("failed to check phone exists", "error", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrPhoneTaken
	}

	var dob sql.NullTime
	if reg.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", reg.DateOfBirth)
		if err != nil {
			return 0, &validation.Error{Message: "Invalid date of birth"}
		}
		dob = sql.NullTime{Time: parsed, Valid: true}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, reg.FirstName, reg.LastName, reg.Email, reg.Phone, reg.Gender, dob, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "error", err)
		return 0, err
	}

	if err := svc.activity.Append(ctx, userID, models.ActionRegistration, "User registered", ipAddress); err != nil {
		logger.Log.Errorw("failed to append registration audit row", "user_id", userID, "error", err)
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID,
		Action:      models.ActionRegistration,
		Description: "User registered",
		IPAddress:   ipAddress,
	})

	return userID, nil
}

// LoginResult carries everything a successful login produces.
type LoginResult struct {
	Principal     models.Principal
	SessionToken  string // Signed session JWT
	RememberToken string // Set only when remember-me was requested
	APIToken      string // Set only by TokenLogin
}

// Login authenticates a user by email and password. The same error is
// returned for an unknown email and a wrong password.
func (svc *AuthService) Login(ctx context.Context, email, password, ipAddress, userAgent string, rememberMe bool) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, &validation.Error{Message: "Email and password are required"}
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to update last login", "user_id", user.ID, "error", err)
		return nil, err
	}

	principal := models.Principal{
		UserID: user.ID,
		Name:   user.FullName(),
		Email:  user.Email,
	}

	sessionToken, err := svc.jwt.Generate(ctx, principal)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "user_id", user.ID, "error", err)
		return nil, err
	}

	result := &LoginResult{
		Principal:    principal,
		SessionToken: sessionToken,
	}

	if rememberMe {
		rememberToken, err := randomToken()
		if err != nil {
			logger.Log.Errorw("failed to generate remember token", "error", err)
			return nil, err
		}
		expiresAt := time.Now().Add(RememberTokenTTL)
		if err := svc.sessions.Save(ctx, user.ID, rememberToken, ipAddress, userAgent, expiresAt); err != nil {
			logger.Log.Errorw("failed to save remember token", "user_id", user.ID, "error", err)
			return nil, err
		}
		result.RememberToken = rememberToken
	}

	if err := svc.activity.Append(ctx, user.ID, models.ActionLogin, "User logged in", ipAddress); err != nil {
		logger.Log.Errorw("failed to append login audit row", "user_id", user.ID, "error", err)
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      user.ID,
		Action:      models.ActionLogin,
		Description: "User logged in",
		IPAddress:   ipAddress,
	})

	return result, nil
}

// TokenLogin authenticates like Login and additionally mints a long-lived
// API token stored on the user row.
func (svc *AuthService) TokenLogin(ctx context.Context, email, password, ipAddress, userAgent string) (*LoginResult, error) {
	result, err := svc.Login(ctx, email, password, ipAddress, userAgent, false)
	if err != nil {
		return nil, err
	}

	apiToken, err := randomToken()
	if err != nil {
		logger.Log.Errorw("failed to generate api token", "error", err)
		return nil, err
	}
	if err := svc.writer.SetAPIToken(ctx, result.Principal.UserID, apiToken); err != nil {
		logger.Log.Errorw("failed to store api token", "user_id", result.Principal.UserID, "error", err)
		return nil, err
	}

	result.APIToken = apiToken
	return result, nil
}

// Logout clears the remember token, if any, and records the event.
func (svc *AuthService) Logout(ctx context.Context, userID int64, rememberToken, ipAddress string) error {
	if rememberToken != "" {
		if err := svc.sessions.DeleteByToken(ctx, rememberToken); err != nil {
			logger.Log.Errorw("failed to delete remember token", "user_id", userID, "error", err)
			return err
		}
	}

	if err := svc.activity.Append(ctx, userID, models.ActionLogout, "User logged out", ipAddress); err != nil {
		logger.Log.Errorw("failed to append logout audit row", "user_id", userID, "error", err)
	}

	return nil
}

// RunSessionCleanup purges expired remember-me token rows every interval
// until the context is cancelled. Intended to run in its own goroutine.
func (svc *AuthService) RunSessionCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := svc.sessions.DeleteExpired(ctx)
			if err != nil {
				logger.Log.Errorw("session cleanup failed", "error", err)
				continue
			}
			if purged > 0 {
				logger.Log.Infow("expired remember tokens purged", "count", purged)
			}
		}
	}
}

// VerifyBearer resolves an API token to a principal. Unknown tokens map to
// ErrInvalidToken, deactivated accounts to ErrAccountDeactivated.
func (svc *AuthService) VerifyBearer(ctx context.Context, token string) (*models.Principal, error) {
	user, err := svc.reader.GetByAPIToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up api token", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	return &models.Principal{
		UserID: user.ID,
		Name:   user.FullName(),
		Email:  user.Email,
	}, nil
}

// randomToken returns a 64-hex-char opaque credential.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// publishActivityEvent publishes an audit event through the given writer.
// A nil writer disables publishing.
func publishActivityEvent(ctx context.Context, writer KafkaWriter, event models.ActivityEvent) {
	if writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}
