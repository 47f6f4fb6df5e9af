// Package logging opens the application log file and gates output by level.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Level controls which messages reach the log
type Level int

const (
	LevelOff Level = iota
	LevelInfo
	LevelDebug
)

// ParseLevel converts a configured level name
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return LevelOff, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger writes session-tagged lines to a single destination
type Logger struct {
	*log.Logger
	level     Level
	sessionID string
	closer    io.Closer
}

// New creates a logger over w. Each logger gets its own session id.
func New(w io.Writer, level Level) *Logger {
	if level == LevelOff {
		w = io.Discard
	}
	id := uuid.New().String()[:8]
	return &Logger{
		Logger:    log.New(w, "["+id+"] ", log.LstdFlags|log.Lmicroseconds),
		level:     level,
		sessionID: id,
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, LevelOff)
}

// Open creates the log directory if needed and appends to path
func Open(path string, level Level) (*Logger, error) {
	if level == LevelOff || path == "" {
		return Discard(), nil
	}

	logDir := filepath.Dir(path)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory %s: %w", logDir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	l := New(file, level)
	l.closer = file
	return l, nil
}

// SessionID returns the short id prefixed to every line
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Infof logs unless the logger is off
func (l *Logger) Infof(format string, args ...any) {
	if l.level >= LevelInfo {
		l.Printf(format, args...)
	}
}

// Debugf logs only at debug level
func (l *Logger) Debugf(format string, args ...any) {
	if l.level >= LevelDebug {
		l.Printf("DEBUG "+format, args...)
	}
}

// Close closes the underlying file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
