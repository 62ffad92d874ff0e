package auth

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/middleware"
	"github.com/learnx-app/learnx-server-go/pkg/config"
)

// RegisterRoutes mounts the authentication endpoints.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, logger *slog.Logger, cfg *config.Config, authMW *middleware.AuthMiddleware) {
	handler := NewHandler(db, logger, cfg)

	group := r.Group("/auth")
	{
		group.POST("/register", handler.Register)
		group.POST("/login", handler.Login)
		group.GET("/me", authMW.AuthenticateToken(), handler.Me)
	}
}
