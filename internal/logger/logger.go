package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger  *slog.Logger
	logFile *os.File
)

// Init initializes the logger with the specified level, format, and file output.
// Records always go to stderr; stdout is reserved for the tree.
func Init(level string, jsonOutput bool, logToFile bool) error {
	var writer io.Writer = os.Stderr

	// If logging to file, set up file writer
	if logToFile {
		logPath, err := getLogFilePath()
		if err != nil {
			return fmt.Errorf("failed to determine log file path: %w", err)
		}

		// Ensure log directory exists
		logDir := filepath.Dir(logPath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		// Close a file left over from an earlier Init
		if err := Close(); err != nil {
			return fmt.Errorf("failed to close previous log file: %w", err)
		}

		// Open log file in append mode
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}

		// Write to both file and stderr
		writer = io.MultiWriter(os.Stderr, logFile)
	}

	InitWithWriter(writer, level, jsonOutput)
	return nil
}

// InitWithWriter points the global logger at w
func InitWithWriter(w io.Writer, level string, jsonOutput bool) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
}

// ParseLevel maps a config level name to a slog level. Unknown names mean warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// getLogFilePath returns the platform-appropriate log file path
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir unavailable
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, "dirtree", "logs", "dirtree.log"), nil
}

// GetLogFilePath returns the expected log file path without creating it
func GetLogFilePath() (string, error) {
	return getLogFilePath()
}

// Sync flushes the log file to disk if it was opened
func Sync() error {
	if logFile != nil {
		return logFile.Sync()
	}
	return nil
}

// Close closes the log file if it was opened
func Close() error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if Logger != nil {
		Logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
	}
}
