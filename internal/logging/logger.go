package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SDVXRGB_LOG_LEVEL"

// Reload events passed to LogReload.
const (
	EventLoaded     = "loaded"
	EventReset      = "reset"
	EventLoadFailed = "load_failed"
	EventStatFailed = "stat_failed"
)

// Initialize creates a new logger with the specified level.
// If level is empty, it checks SDVXRGB_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// The hook runs inside the game's render thread, stay quiet by default
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	return nil
}

// InitializeFromEnv initializes the logger from the SDVXRGB_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogReload logs the outcome of a configuration reload check that did work.
// Failures are logged at warn level, everything else at info.
func LogReload(path string, event string, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.String("path", path),
		zap.String("event", event),
	}, fields...)

	switch event {
	case EventLoadFailed, EventStatFailed:
		Warn("Config reload", all...)
	default:
		Info("Config reload", all...)
	}
}

// LogSnapshot logs which strips a snapshot transforms, at debug level.
// active holds the names of the active strips.
func LogSnapshot(path string, active []string) {
	ce := GetLogger().Check(zapcore.DebugLevel, "Config snapshot")
	if ce == nil {
		return
	}
	ce.Write(
		zap.String("path", path),
		zap.Int("active_count", len(active)),
		zap.Strings("active", active),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
