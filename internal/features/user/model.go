package user

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/pkg/types"
)

// User represents a registered account. Users own generated lessons
// and courses and are never mutated or deleted after registration.
type User struct {
	types.BaseModel

	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName overrides the default table name.
func (User) TableName() string { return "users" }

// CreateInput carries data for creating a new user.
type CreateInput struct {
	Email    string
	Password string
}

// Create inserts a new user with a bcrypt hashed password. The email is
// normalised to lowercase; a duplicate email yields ErrEmailTaken. The
// existence check runs before the insert, and the unique index on email
// catches the concurrent-registration race the check cannot.
func Create(db *gorm.DB, input CreateInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := GetByEmail(db, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return User{}, err
	}

	usr := User{
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&usr).Error; err != nil {
		if isDuplicateKey(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}

	return usr, nil
}

// GetByEmail retrieves a user by email.
func GetByEmail(db *gorm.DB, email string) (User, error) {
	var usr User
	err := db.First(&usr, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, ErrUserNotFound
		}
		return usr, err
	}
	return usr, nil
}

// ComparePassword checks the provided password against the stored bcrypt hash.
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers whose errors gorm does not translate.
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
