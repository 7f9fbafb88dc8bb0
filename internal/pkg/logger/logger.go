package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	zapLogger    *zap.Logger
)

// ParseLevel maps a textual level onto a zap level. Unknown values fall back to info.
func ParseLevel(levelStr string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return zapcore.DebugLevel, true
	case "INFO", "":
		return zapcore.InfoLevel, true
	case "WARN", "WARNING":
		return zapcore.WarnLevel, true
	case "ERROR":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Init builds a zap core for the given level and encoding ("json" or "console")
// and installs it, through zapslog, as the global and default slog logger.
func Init(levelStr, encoding string) error {
	level, ok := ParseLevel(levelStr)

	zcfg := zap.NewProductionConfig()
	if encoding == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true

	z, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}
	install(z)

	if !ok {
		Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
	}
	return nil
}

// InitWithCore installs a logger backed by an existing zap core. Used by tests.
func InitWithCore(core zapcore.Core) {
	install(zap.New(core))
}

func install(z *zap.Logger) {
	l := slog.New(zapslog.NewHandler(z.Core()))

	mu.Lock()
	zapLogger = z
	globalLogger = l
	mu.Unlock()

	slog.SetDefault(l)
}

func current() *slog.Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	// Initialize with defaults if nobody called Init.
	if err := Init("INFO", "json"); err != nil {
		return slog.Default()
	}
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	z := zapLogger
	mu.RUnlock()
	if z != nil {
		_ = z.Sync()
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) {
	l := current()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug(msg, args...)
	}
}

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	current().Error(msg, args...)
	Sync()
	os.Exit(1)
}
