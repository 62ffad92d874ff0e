package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/internal/utils/jwt"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:    "test-secret",
		Algorithm: "HS256",
		TTL:       time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)

	usr, err := Register(db, RegisterInput{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", usr.Email)
	assert.NotEqual(t, "s3cret", usr.Password, "password must be stored hashed")

	token, err := Login(db, LoginInput{Email: "alice@example.com", Password: "s3cret"}, testTokenConfig())
	require.NoError(t, err)

	claims, err := jwt.VerifyToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, RegisterInput{Email: "bob@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = Register(db, RegisterInput{Email: "bob@example.com", Password: "other"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, RegisterInput{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = Register(db, RegisterInput{Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, RegisterInput{Email: "carol@example.com", Password: "correct"})
	require.NoError(t, err)

	_, err = Login(db, LoginInput{Email: "carol@example.com", Password: "wrong"}, testTokenConfig())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, err := Login(db, LoginInput{Email: "ghost@example.com", Password: "whatever"}, testTokenConfig())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
