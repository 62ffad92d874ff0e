package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/internal/middleware"
	"github.com/learnx-app/learnx-server-go/pkg/config"
	"github.com/learnx-app/learnx-server-go/pkg/response"
)

// Handler processes authentication HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
	cfg    *config.Config
}

// NewHandler constructs an auth handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger, cfg *config.Config) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}
}

// UserOut is the public representation of a user.
type UserOut struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// TokenOut is the login response body.
type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user account.
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}

	usr, err := Register(h.db.WithContext(c.Request.Context()), RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, err, "registration failed")
		return
	}

	h.logger.Info("user registered", slog.String("email", usr.Email))

	response.OK(c, UserOut{ID: usr.ID, Email: usr.Email})
}

// Login authenticates a user and returns a bearer token. The username
// field carries the email; both JSON and form bodies are accepted.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	token, err := Login(h.db.WithContext(c.Request.Context()), LoginInput{
		Email:    req.Username,
		Password: req.Password,
	}, h.tokenConfig())
	if err != nil {
		h.respondError(c, err, "login failed")
		return
	}

	response.OK(c, TokenOut{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.ErrorWithLog(h.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
		return
	}

	response.OK(c, UserOut{ID: usr.ID, Email: usr.Email})
}

func (h *Handler) tokenConfig() TokenConfig {
	return TokenConfig{
		Secret:    h.cfg.JWTSecret,
		Algorithm: h.cfg.JWTAlgorithm,
		TTL:       time.Duration(h.cfg.TokenTTLMinutes) * time.Minute,
	}
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	detail := fallback

	switch {
	case errors.Is(err, user.ErrEmailTaken):
		status = http.StatusBadRequest
		detail = "Email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = "Invalid credentials"
	case errors.Is(err, ErrMissingFields):
		status = http.StatusBadRequest
		detail = "Missing required fields"
	case errors.Is(err, ErrInvalidEmail):
		status = http.StatusBadRequest
		detail = "Invalid email format"
	}

	response.ErrorWithLog(h.logger, c, status, detail, err)
}
