package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(15) NOT NULL UNIQUE,
		gender VARCHAR(20) NOT NULL,
		date_of_birth DATE,
		password_hash VARCHAR(255) NOT NULL,
		api_token VARCHAR(64),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS user_sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		session_token VARCHAR(64) NOT NULL UNIQUE,
		ip_address VARCHAR(45) NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	dob := sql.NullTime{Time: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), Valid: true}
	userID, err := repo.Save(ctx, "Asha", "Rao", "asha@example.com", "9876543210", "female", dob, "hashed-password")
	assert.NoError(t, err)
	assert.NotZero(t, userID)

	var user struct {
		FirstName    string `db:"first_name"`
		Email        string `db:"email"`
		Phone        string `db:"phone"`
		PasswordHash string `db:"password_hash"`
		IsActive     bool   `db:"is_active"`
	}
	err = db.Get(&user, "SELECT first_name, email, phone, password_hash, is_active FROM users WHERE id=$1", userID)
	assert.NoError(t, err)

	assert.Equal(t, "Asha", user.FirstName)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "9876543210", user.Phone)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestUserReadRepository_Lookups(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "Ravi", "Iyer", "ravi@example.com", "9123456780", "male", sql.NullTime{}, "hash")
	assert.NoError(t, err)

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "ravi@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "Ravi Iyer", user.FullName())
	})

	t.Run("ByPhone", func(t *testing.T) {
		user, err := readRepo.GetByPhone(ctx, "9123456780")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "ravi@example.com", user.Email)
	})

	t.Run("UnknownEmailIsNilNotError", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_UpdateLastLogin(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "Asha", "Rao", "asha@example.com", "9876543210", "female", sql.NullTime{}, "hash")
	assert.NoError(t, err)

	before, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.False(t, before.LastLogin.Valid)

	assert.NoError(t, writeRepo.UpdateLastLogin(ctx, userID))

	after, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.True(t, after.LastLogin.Valid)
}

func TestUserWriteRepository_SetAPIToken(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "Asha", "Rao", "asha@example.com", "9876543210", "female", sql.NullTime{}, "hash")
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.SetAPIToken(ctx, userID, "api-token-value"))

	user, err := readRepo.GetByAPIToken(ctx, "api-token-value")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.ID)

	unknown, err := readRepo.GetByAPIToken(ctx, "unknown-token")
	assert.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestSessionTokenRepository(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	sessionRepo := NewSessionTokenRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "Asha", "Rao", "asha@example.com", "9876543210", "female", sql.NullTime{}, "hash")
	assert.NoError(t, err)

	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	assert.NoError(t, sessionRepo.Save(ctx, userID, "remember-token", "10.0.0.1", "go-test", expiresAt))

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_sessions WHERE session_token=$1", "remember-token"))
	assert.Equal(t, 1, count)

	assert.NoError(t, sessionRepo.DeleteByToken(ctx, "remember-token"))
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_sessions WHERE session_token=$1", "remember-token"))
	assert.Equal(t, 0, count)

	// Expired rows are purged, live rows survive.
	assert.NoError(t, sessionRepo.Save(ctx, userID, "stale-token", "10.0.0.1", "go-test", time.Now().Add(-time.Hour)))
	assert.NoError(t, sessionRepo.Save(ctx, userID, "live-token", "10.0.0.1", "go-test", expiresAt))

	purged, err := sessionRepo.DeleteExpired(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_sessions"))
	assert.Equal(t, 1, count)
}
