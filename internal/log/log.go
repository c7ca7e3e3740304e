// Package log provides structured file logging for codearea hosts.
// Bubble Tea owns stdout, so entries go to a file opened through
// tea.LogToFile. Logging is a no-op until Init is called.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatLayout Category = "layout" // Geometry recomputation
	CatScroll Category = "scroll" // Scroll position changes
	CatUI     Category = "ui"     // Input handling
	CatConfig Category = "config" // Configuration loading/saving
)

type logger struct {
	mu       sync.Mutex
	writer   io.Writer
	closer   io.Closer
	enabled  bool
	minLevel Level
	now      func() time.Time
}

var (
	stateMu sync.RWMutex
	current *logger
)

// Init opens path through tea.LogToFile and routes all logging there.
// The returned function closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "codearea")
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	install(&logger{writer: f, closer: f, enabled: true, now: time.Now})
	return func() {
		install(nil)
		_ = f.Close()
	}, nil
}

// InitWriter routes logging to w. Used by tests and embedding hosts.
func InitWriter(w io.Writer) {
	install(&logger{writer: w, enabled: true, now: time.Now})
}

// Disable stops logging and forgets the current destination.
func Disable() { install(nil) }

func install(l *logger) {
	stateMu.Lock()
	current = l
	stateMu.Unlock()
}

func get() *logger {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return current
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := get(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := get(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }

func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields...) }

func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields...) }

func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := get()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// 2026-01-02T15:04:05 [DEBUG] [scroll] message key=value
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", l.now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	_, _ = io.WriteString(l.writer, sb.String())
}
