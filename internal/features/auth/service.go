package auth

import (
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/internal/utils/jwt"
)

// TokenConfig carries the signing parameters for issued tokens.
type TokenConfig struct {
	Secret    string
	Algorithm string
	TTL       time.Duration
}

// RegisterInput carries credentials for a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput carries credentials for an existing account.
type LoginInput struct {
	Email    string
	Password string
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates a new user account. Duplicate emails surface as
// user.ErrEmailTaken.
func Register(db *gorm.DB, input RegisterInput) (user.User, error) {
	if input.Email == "" || input.Password == "" {
		return user.User{}, ErrMissingFields
	}

	if !emailRegex.MatchString(input.Email) {
		return user.User{}, ErrInvalidEmail
	}

	return user.Create(db, user.CreateInput{
		Email:    input.Email,
		Password: input.Password,
	})
}

// Login authenticates a user and issues a signed access token whose
// subject is the user's email. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func Login(db *gorm.DB, input LoginInput, cfg TokenConfig) (string, error) {
	if input.Email == "" || input.Password == "" {
		return "", ErrMissingFields
	}

	usr, err := user.GetByEmail(db, input.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !usr.ComparePassword(input.Password) {
		return "", ErrInvalidCredentials
	}

	return jwt.GenerateAccessToken(usr.Email, cfg.Secret, cfg.Algorithm, cfg.TTL)
}
