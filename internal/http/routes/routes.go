package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/auth"
	"github.com/learnx-app/learnx-server-go/internal/features/course"
	"github.com/learnx-app/learnx-server-go/internal/features/lesson"
	"github.com/learnx-app/learnx-server-go/internal/middleware"
	"github.com/learnx-app/learnx-server-go/internal/services/llm"
	"github.com/learnx-app/learnx-server-go/pkg/config"
	"github.com/learnx-app/learnx-server-go/pkg/health"
	"github.com/learnx-app/learnx-server-go/pkg/response"
)

// Register wires all feature routes onto the engine.
func Register(engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *slog.Logger, generator *llm.Service) {
	engine.GET("/", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok", "app": "LearnX API"})
	})

	// Health check endpoints (no auth for Kubernetes probes)
	healthHandler := health.NewHandler(db, logger)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)
	engine.GET("/version", healthHandler.VersionInfo)

	// Metrics endpoint for Prometheus
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMW := middleware.NewAuthMiddleware(db, cfg.JWTSecret, logger)

	root := engine.Group("")
	auth.RegisterRoutes(root, db, logger, cfg, authMW)
	lesson.RegisterRoutes(root, db, logger, generator, authMW)
	course.RegisterRoutes(root, db, logger, generator, authMW)
}
