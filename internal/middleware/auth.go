package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/internal/utils/jwt"
	"github.com/learnx-app/learnx-server-go/pkg/response"
)

const userContextKey = "user"

// AuthMiddleware holds dependencies for authentication middleware.
type AuthMiddleware struct {
	db        *gorm.DB
	jwtSecret string
	logger    *slog.Logger
}

// NewAuthMiddleware creates an auth middleware instance.
func NewAuthMiddleware(db *gorm.DB, jwtSecret string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		db:        db,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// AuthenticateToken validates the bearer token and loads the subject's
// user record into the request context. A missing or malformed header,
// bad signature, expired token, empty subject, or a subject with no
// matching user all yield a 401.
func (m *AuthMiddleware) AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
			c.Abort()
			return
		}

		claims, err := jwt.VerifyToken(token, m.jwtSecret)
		if err != nil {
			response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Could not validate credentials", err)
			c.Abort()
			return
		}

		if claims.Subject == "" {
			response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
			c.Abort()
			return
		}

		usr, err := user.GetByEmail(m.db.WithContext(c.Request.Context()), claims.Subject)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Could not validate credentials", err)
			} else {
				response.ErrorWithLog(m.logger, c, http.StatusInternalServerError, "Internal server error", err)
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, &usr)
		c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	usr, ok := value.(*user.User)
	if !ok || usr == nil {
		return nil, false
	}
	return usr, true
}
