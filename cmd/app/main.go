package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnx-app/learnx-server-go/internal/features/course"
	"github.com/learnx-app/learnx-server-go/internal/features/lesson"
	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/internal/http/routes"
	"github.com/learnx-app/learnx-server-go/internal/services/llm"
	"github.com/learnx-app/learnx-server-go/pkg/config"
	"github.com/learnx-app/learnx-server-go/pkg/database"
	"github.com/learnx-app/learnx-server-go/pkg/logger"
	"github.com/learnx-app/learnx-server-go/pkg/metrics"
	"github.com/learnx-app/learnx-server-go/pkg/middleware"
	"github.com/learnx-app/learnx-server-go/pkg/request"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := database.Close(db, appLogger); err != nil {
			appLogger.Error("database close failed", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.RunMigrations {
		if err := db.AutoMigrate(&user.User{}, &lesson.Lesson{}, &course.Course{}); err != nil {
			appLogger.Error("migrations failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		appLogger.Info("database migrations applied")
	}

	generator := llm.NewService(cfg.LLM, appLogger)
	appLogger.Info("generation backend ready", slog.String("provider", string(generator.Provider())))

	router := gin.New()

	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(10 * 1024 * 1024)) // 10MB limit
	router.Use(metrics.Middleware())
	router.Use(request.Handler(appLogger))

	routes.Register(router, cfg, db, appLogger, generator)

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		appLogger.Info("server starting",
			slog.String("addr", cfg.ServerAddress()),
			slog.String("env", cfg.Env),
			slog.String("log_level", cfg.LogLevel),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown failed", slog.String("error", err.Error()))
	} else {
		appLogger.Info("server stopped gracefully")
	}
}
