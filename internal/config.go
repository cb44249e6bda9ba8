package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL     string        `env:"SKILLSPOT_API_URL,default=http://localhost:8000/api"`
	WSBaseURL      string        `env:"SKILLSPOT_WS_URL,default=ws://localhost:8000"`
	BadgerFilepath string        `env:"SKILLSPOT_STATE_DIR,default=.skillspot"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,default=15s"`
	PageSize       int           `env:"PAGE_SIZE,default=20"`
}

// NewLogger builds the process logger from the configured level string.
func NewLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
