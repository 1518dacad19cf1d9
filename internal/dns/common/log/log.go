// Package log provides the library's structured logging facade over zap.
// The codecs themselves never log — every failure is returned as a value —
// but the zone loaders and the CLI report progress and skipped input here.
package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used throughout rr-wire.
type Logger interface {
	Debug(fields map[string]any, msg string)
	Info(fields map[string]any, msg string)
	Warn(fields map[string]any, msg string)
	Error(fields map[string]any, msg string)
	Fatal(fields map[string]any, msg string)
}

// default to prod/info until Configure is called
var global Logger = newZapLogger(false, zapcore.InfoLevel)

// SetLogger replaces the global logger. Useful in tests.
func SetLogger(l Logger) {
	global = l
}

// GetLogger returns the current global logger.
func GetLogger() Logger {
	return global
}

// Configure rebuilds the global logger for the given environment ("dev"
// enables the console encoder) and minimum level.
func Configure(env, level string) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	global = newZapLogger(env == "dev", lvl)
	return nil
}

// Debug logs at debug level using the global logger.
func Debug(fields map[string]any, msg string) { global.Debug(fields, msg) }

// Info logs at info level using the global logger.
func Info(fields map[string]any, msg string) { global.Info(fields, msg) }

// Warn logs at warn level using the global logger.
func Warn(fields map[string]any, msg string) { global.Warn(fields, msg) }

// Error logs at error level using the global logger.
func Error(fields map[string]any, msg string) { global.Error(fields, msg) }

// Fatal logs at fatal level using the global logger and exits.
func Fatal(fields map[string]any, msg string) { global.Fatal(fields, msg) }

// zapLogger implements Logger on a zap.Logger.
type zapLogger struct {
	base *zap.Logger
}

func newZapLogger(dev bool, level zapcore.Level) Logger {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.LevelKey = "level"

	logger, _ := cfg.Build()
	return &zapLogger{base: logger}
}

func (l *zapLogger) log(level zapcore.Level, fields map[string]any, msg string) {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	l.base.With(zf...).Log(level, msg)
}

func (l *zapLogger) Debug(fields map[string]any, msg string) { l.log(zapcore.DebugLevel, fields, msg) }
func (l *zapLogger) Info(fields map[string]any, msg string)  { l.log(zapcore.InfoLevel, fields, msg) }
func (l *zapLogger) Warn(fields map[string]any, msg string)  { l.log(zapcore.WarnLevel, fields, msg) }
func (l *zapLogger) Error(fields map[string]any, msg string) { l.log(zapcore.ErrorLevel, fields, msg) }

func (l *zapLogger) Fatal(fields map[string]any, msg string) {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	l.base.With(zf...).Fatal(msg)
}

// noopLogger discards everything. Returned by NewNoopLogger for tests.
type noopLogger struct{}

func (noopLogger) Debug(map[string]any, string) {}
func (noopLogger) Info(map[string]any, string)  {}
func (noopLogger) Warn(map[string]any, string)  {}
func (noopLogger) Error(map[string]any, string) {}
func (noopLogger) Fatal(map[string]any, string) {}

// NewNoopLogger returns a Logger that discards all messages.
func NewNoopLogger() Logger {
	return noopLogger{}
}
