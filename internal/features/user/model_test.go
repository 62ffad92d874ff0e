package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestCreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)

	created, err := Create(db, CreateInput{Email: " A@X.com ", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NotEqual(t, "pw1", created.Password)

	found, err := GetByEmail(db, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := Create(db, CreateInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = Create(db, CreateInput{Email: "a@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByEmailNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetByEmail(db, "missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestComparePassword(t *testing.T) {
	db := newTestDB(t)

	usr, err := Create(db, CreateInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	assert.True(t, usr.ComparePassword("pw1"))
	assert.False(t, usr.ComparePassword("pw2"))
	assert.False(t, usr.ComparePassword(""))
}
