// Package logging provides structured logging for the notification
// presenter. The presenter core itself stays silent on its no-op paths;
// logging is for the daemon and surface glue around it.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface used across the program.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
}

// Config controls logger creation.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn or error.
	Level string
	// JSON switches the output format from text to JSON.
	JSON bool
}

type loggerImpl struct {
	clogger *clog.Logger
}

// New creates a logger writing to the given writer.
func New(w io.Writer, cfg Config) Logger {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           parseLevel(cfg.Level),
	})
	if cfg.JSON {
		clogger.SetFormatter(clog.JSONFormatter)
	}
	return &loggerImpl{clogger: clogger}
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *loggerImpl) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...)}
}

// Noop is a logger that discards all output.
type Noop struct{}

func (Noop) Debug(msg string, args ...any) {}
func (Noop) Info(msg string, args ...any)  {}
func (Noop) Warn(msg string, args ...any)  {}
func (Noop) Error(msg string, args ...any) {}
func (Noop) With(args ...any) Logger       { return Noop{} }

var (
	globalLogger Logger = Noop{}
	globalMu     sync.RWMutex
)

// SetGlobal installs the global logger used by the convenience functions.
func SetGlobal(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if l == nil {
		l = Noop{}
	}
	globalLogger = l
}

// Global returns the global logger, or a no-op logger if none is set.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// InitGlobal creates a stderr logger from the config and installs it
// globally.
func InitGlobal(cfg Config) Logger {
	l := New(os.Stderr, cfg)
	SetGlobal(l)
	return l
}
