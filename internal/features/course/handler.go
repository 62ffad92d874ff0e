package course

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

// Handler serves course generation requests.
type Handler struct {
	db        *gorm.DB
	logger    *slog.Logger
	generator *llm.Service
}

// NewHandler constructs a course handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger, generator *llm.Service) *Handler {
	return &Handler{
		db:        db,
		logger:    logger,
		generator: generator,
	}
}

// CourseOut is the generation response body.
type CourseOut struct {
	ID            uuid.UUID       `json:"id"`
	Topic         string          `json:"topic"`
	DurationWeeks int             `json:"duration_weeks"`
	Syllabus      json.RawMessage `json:"syllabus"`
}

// Generate produces a course syllabus for the authenticated user and
// stores it before responding.
func (h *Handler) Generate(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.ErrorWithLog(h.logger, c, http.StatusUnauthorized, "Could not validate credentials", nil)
		return
	}

	var req struct {
		Topic         string  `json:"topic" binding:"required"`
		DurationWeeks *int    `json:"duration_weeks"`
		Goals         *string `json:"goals"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "Invalid course request", err)
		return
	}

	weeks := 2
	if req.DurationWeeks != nil {
		weeks = *req.DurationWeeks
	}
	if weeks < 1 {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "duration_weeks must be positive", nil)
		return
	}

	goals := ""
	if req.Goals != nil {
		goals = *req.Goals
	}

	doc, err := h.generator.GenerateCourse(c.Request.Context(), req.Topic, weeks, goals)
	if err != nil {
		if errors.Is(err, llm.ErrUpstream) {
			response.ErrorWithLog(h.logger, c, http.StatusBadGateway, "Course generation failed", err)
			return
		}
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Course generation failed", err)
		return
	}

	crs, err := Create(h.db.WithContext(c.Request.Context()), usr.ID, req.Topic, weeks, doc)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Could not store course", err)
		return
	}

	h.logger.Info("course generated",
		slog.String("topic", req.Topic),
		slog.Int("duration_weeks", weeks),
		slog.String("provider", string(h.generator.Provider())),
	)

	response.OK(c, CourseOut{
		ID:            crs.ID,
		Topic:         crs.Topic,
		DurationWeeks: crs.DurationWeeks,
		Syllabus:      json.RawMessage(crs.Syllabus),
	})
}
