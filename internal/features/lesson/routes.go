package lesson

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/middleware"
	"github.com/learnx-app/learnx-server-go/internal/services/llm"
)

// RegisterRoutes mounts the lesson generation endpoint.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, logger *slog.Logger, generator *llm.Service, authMW *middleware.AuthMiddleware) {
	handler := NewHandler(db, logger, generator)

	r.POST("/generate/lesson", authMW.AuthenticateToken(), handler.Generate)
}
