// Package logging provides a tiny abstraction over slog so downstream code can
// depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer BotLogger with contextual helpers
// (component, user) and domain specific logging helpers for turns and audit
// delivery.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger defines the minimal logging interface for DialogMesh. This allows
// users to provide their own logger implementation or use the built-in
// adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NoOpLogger discards all log messages. Useful for testing or when logging is
// disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// BotLogger wraps slog.Logger adding contextual cloning helpers and domain
// convenience methods. It is cheap to copy via With* methods.
type BotLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	userID    string
}

// LoggerConfig configures construction of a BotLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	Component string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// NewLogger builds a BotLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *BotLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return &BotLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component}
}

// NewBotLogger creates a BotLogger with the specified level and format.
func NewBotLogger(level LogLevel, format string) *BotLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	return NewLogger(cfg)
}

// WithComponent returns a copy bound to the logical component (dialog,
// transport, audit, ...).
func (l *BotLogger) WithComponent(c string) *BotLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithUser returns a copy bound to a user identifier.
func (l *BotLogger) WithUser(userID string) *BotLogger {
	nl := *l
	nl.userID = userID
	return &nl
}

func (l *BotLogger) attrs(extra ...slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(extra)+2)
	if l.component != "" {
		out = append(out, slog.String("component", l.component))
	}
	if l.userID != "" {
		out = append(out, slog.String("user_id", l.userID))
	}
	return append(out, extra...)
}

func (l *BotLogger) log(level slog.Level, allowed bool, msg string, args []any) {
	if !allowed {
		return
	}
	attrs := l.attrs()
	l.logger.LogAttrs(context.Background(), level, msg, append(attrs, argsToAttrs(args)...)...)
}

func argsToAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
	}
	return attrs
}

// Debug logs at debug level.
func (l *BotLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args)
}

// Info logs at info level.
func (l *BotLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args)
}

// Warn logs at warn level.
func (l *BotLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args)
}

// Error logs at error level.
func (l *BotLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args)
}

// LogTurn records the outcome of one dialog turn.
func (l *BotLogger) LogTurn(userID, step, intent string, dur time.Duration) {
	if l.level > LogLevelInfo {
		return
	}
	attrs := l.attrs(
		slog.String("user_id", userID),
		slog.String("step", step),
		slog.String("intent", intent),
		slog.Duration("duration", dur),
	)
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Turn completed", attrs...)
}

// LogAuditFailure reports a failed audit write. Sink failures never reach the
// user; this is the operator-facing signal.
func (l *BotLogger) LogAuditFailure(kind string, err error) {
	attrs := l.attrs(slog.String("event_kind", kind), slog.String("error", err.Error()))
	l.logger.LogAttrs(context.Background(), slog.LevelError, "Audit write failed", attrs...)
}
