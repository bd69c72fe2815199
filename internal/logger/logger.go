// Package logger provides a simple logging interface for toast components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables that override the configured level.
const (
	// DebugEnvVar enables debug output when set to any non-empty value.
	DebugEnvVar = "TOAST_DEBUG"
	// LevelEnvVar selects the minimum level: debug, info, warn or error.
	LevelEnvVar = "TOAST_LOG_LEVEL"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger implements Logger on top of a zap SugaredLogger.
type envLogger struct {
	prefix string
	sugar  *zap.SugaredLogger
}

// NewWriterLogger creates a logger that writes console-encoded entries to w
// at or above the named level. The prefix, if any, leads every message.
func NewWriterLogger(prefix string, w io.Writer, level string) Logger {
	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(ParseLevel(level)),
	)
	return &envLogger{prefix: prefix, sugar: zap.New(core).Sugar()}
}

// LevelFromEnv resolves the level name from TOAST_DEBUG and TOAST_LOG_LEVEL.
// TOAST_DEBUG wins. ok is false when neither is set.
func LevelFromEnv() (level string, ok bool) {
	if os.Getenv(DebugEnvVar) != "" {
		return "debug", true
	}
	if lvl := strings.TrimSpace(os.Getenv(LevelEnvVar)); lvl != "" {
		return strings.ToLower(lvl), true
	}
	return "", false
}

// ParseLevel maps a level name to a zap level. Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *envLogger) line(format string, args []interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		return msg
	}
	return l.prefix + " " + msg
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debug(l.line(format, args))
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.sugar.Info(l.line(format, args))
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warn(l.line(format, args))
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.sugar.Error(l.line(format, args))
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Count returns how many messages were logged at the given level.
func (l *BufferLogger) Count(level string) int {
	n := 0
	for _, m := range l.Messages {
		if m.Level == level {
			n++
		}
	}
	return n
}

// AtLevel returns the messages logged at the given level, in order.
func (l *BufferLogger) AtLevel(level string) []LogMessage {
	var out []LogMessage
	for _, m := range l.Messages {
		if m.Level == level {
			out = append(out, m)
		}
	}
	return out
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
