package lesson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/middleware"
	"github.com/learnx-app/learnx-server-go/internal/services/llm"
	"github.com/learnx-app/learnx-server-go/pkg/response"
)

// Handler serves lesson generation requests.
type Handler struct {
	db        *gorm.DB
	logger    *slog.Logger
	generator *llm.Service
}

// NewHandler constructs a lesson handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger, generator *llm.Service) *Handler {
	return &Handler{
		db:        db,
		logger:    logger,
		generator: generator,
	}
}

// LessonOut is the generation response body.
type LessonOut struct {
	ID      uuid.UUID       `json:"id"`
	Topic   string          `json:"topic"`
	Level   string          `json:"level"`
	Content json.RawMessage `json:"content"`
}

// Generate produces a lesson document for the authenticated user and
// stores it before responding.
func (h *Handler) Generate(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.ErrorWithLog(h.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
		return
	}

	var req struct {
		Topic string  `json:"topic" binding:"required"`
		Level string  `json:"level"`
		Goals *string `json:"goals"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "Invalid lesson request", err)
		return
	}

	if req.Level == "" {
		req.Level = "beginner"
	}

	goals := ""
	if req.Goals != nil {
		goals = *req.Goals
	}

	doc, err := h.generator.GenerateLesson(c.Request.Context(), req.Topic, req.Level, goals)
	if err != nil {
		if errors.Is(err, llm.ErrUpstream) {
			response.ErrorWithLog(h.logger, c, http.StatusBadGateway, "Lesson generation failed", err)
			return
		}
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Lesson generation failed", err)
		return
	}

	lsn, err := Create(h.db.WithContext(c.Request.Context()), usr.ID, req.Topic, req.Level, doc)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Could not store lesson", err)
		return
	}

	h.logger.Info("lesson generated",
		slog.String("topic", req.Topic),
		slog.String("level", req.Level),
		slog.String("provider", string(h.generator.Provider())),
	)

	response.OK(c, LessonOut{
		ID:      lsn.ID,
		Topic:   lsn.Topic,
		Level:   lsn.Level,
		Content: json.RawMessage(lsn.Content),
	})
}
