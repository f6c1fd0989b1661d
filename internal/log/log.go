// Package log provides structured logging for reqdesk.
// Entries carry a level, a category and key=value fields, and are written to a
// size-rotated debug log. Logging stays off unless --debug or REQDESK_DEBUG
// enables it, because the terminal itself belongs to the TUI.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvDebug enables debug logging when set to a non-empty value.
const EnvDebug = "REQDESK_DEBUG"

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
	CatSession  Category = "session"  // Orchestrator operations
	CatCatalog  Category = "catalog"  // Request catalog generation and paging
	CatStep     Category = "step"     // Step transitions
	CatPreview  Category = "preview"  // Artifact export and clipboard
	CatConfig   Category = "config"   // Configuration loading/saving
	CatUI       Category = "ui"       // UI component updates
	CatWatcher  Category = "watcher"  // File watcher events
	CatStore    Category = "store"    // SQLite catalog store
	CatTrace    Category = "trace"    // Tracing provider lifecycle
	CatCache    Category = "cache"    // Cache operations
	CatWorkflow Category = "workflow" // Conversational workflow engine
)

// Options controls log rotation.
type Options struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions keeps a handful of small rotated files.
func DefaultOptions() Options {
	return Options{
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 14,
	}
}

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	closer   io.Closer
	enabled  bool
	minLevel Level
}

var (
	defaultLogger *Logger
	initMu        sync.Mutex
)

// Init points the global logger at a rotating file.
// Returns a cleanup function that closes the file.
func Init(path string, opts Options) (func(), error) {
	if path == "" {
		return nil, fmt.Errorf("log path is required")
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	// Open eagerly so a bad path fails here instead of on first write.
	if _, err := rotator.Write(nil); err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	initMu.Lock()
	defaultLogger = &Logger{
		writer:   rotator,
		closer:   rotator,
		enabled:  true,
		minLevel: LevelDebug,
	}
	initMu.Unlock()

	return func() {
		initMu.Lock()
		defer initMu.Unlock()
		if defaultLogger != nil && defaultLogger.closer != nil {
			_ = defaultLogger.closer.Close()
		}
		defaultLogger = nil
	}, nil
}

// InitWriter routes the global logger to w. Intended for tests.
func InitWriter(w io.Writer) func() {
	initMu.Lock()
	defaultLogger = &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
	}
	initMu.Unlock()

	return func() {
		initMu.Lock()
		defaultLogger = nil
		initMu.Unlock()
	}
}

// DebugRequested reports whether debug logging was asked for via flag or env.
func DebugRequested(flag bool) bool {
	return flag || os.Getenv(EnvDebug) != ""
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	initMu.Lock()
	defer initMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	initMu.Lock()
	defer initMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	initMu.Lock()
	l := defaultLogger
	initMu.Unlock()

	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	_, _ = io.WriteString(l.writer, format(time.Now(), level, cat, msg, fields...))
}

// format renders one entry:
// 2025-12-06T10:45:00 [ERROR] [session] message key=value key2=value2
func format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	// Orphan key with no value
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteString("\n")

	return b.String()
}
