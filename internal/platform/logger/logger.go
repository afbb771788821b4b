package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerConfig holds the settings used to build the application logger.
type LoggerConfig struct {
	// Level is one of debug, info, warn or error. Unknown values fall back to info.
	Level string

	// File, when set, receives a copy of every record in a size-rotated file.
	File string

	// MaxSizeMB is the size at which File is rotated. Zero uses 100MB.
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep. Zero keeps all.
	MaxBackups int

	// Output overrides stdout as the primary destination. Used by tests.
	Output io.Writer
}

// ParseLevel converts a configured level name to a slog.Level.
// The boolean is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger with the requested level,
// installs it as the slog default, and returns it.
func Setup(cfg LoggerConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}

	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 100
		}
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		})
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Allows using slog.Info etc. directly elsewhere in the application
	slog.SetDefault(logger)

	return logger, nil
}
