package logger

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New creates a structured slog.Logger for the given level string.
// Output goes to the console as text and to logs/info.log and
// logs/error.log as JSON.
func New(level string) (*slog.Logger, error) {
	handlerLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, err
	}

	infoFile, err := os.OpenFile(filepath.Join("logs", "info.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	errorFile, err := os.OpenFile(filepath.Join("logs", "error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	handler := &splitHandler{
		console:   slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: handlerLevel}),
		infoFile:  slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: handlerLevel}),
		errorFile: slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}),
		level:     handlerLevel,
	}

	return slog.New(handler), nil
}

// splitHandler fans records out to the console and log files.
type splitHandler struct {
	console   slog.Handler
	infoFile  slog.Handler
	errorFile slog.Handler
	level     slog.Leveler
}

func (h *splitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.console.Handle(ctx, r); err != nil {
		return err
	}
	if err := h.infoFile.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= slog.LevelError {
		return h.errorFile.Handle(ctx, r)
	}
	return nil
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{
		console:   h.console.WithAttrs(attrs),
		infoFile:  h.infoFile.WithAttrs(attrs),
		errorFile: h.errorFile.WithAttrs(attrs),
		level:     h.level,
	}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{
		console:   h.console.WithGroup(name),
		infoFile:  h.infoFile.WithGroup(name),
		errorFile: h.errorFile.WithGroup(name),
		level:     h.level,
	}
}

func parseLevel(level string) (slog.Leveler, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return nil, errors.New("invalid log level")
	}
}
