package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tripx/config"
)

// Logger is the process-wide structured logger.
var Logger *slog.Logger

// Init configures slog from the log section of the config: level
// (debug/info/warn/error), format (text/json) and output (stdout/file/both).
func Init(cfg *config.Config) error {
	level := cfg.Log.Level
	format := cfg.Log.Format
	output := cfg.Log.Output
	filePath := cfg.Log.FilePath

	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
	}

	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer io.Writer
	switch strings.ToLower(output) {
	case "file":
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = file
	case "both":
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = io.MultiWriter(os.Stdout, file)
	default:
		writer = os.Stdout
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return nil
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
