// Package logging writes structured logs away from the terminal the TUI owns.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "everyday.log"
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 14
)

var (
	mu sync.Mutex

	// Logger is the global logger instance
	Logger *log.Logger

	// logFile is the rotating log file, nil when logging elsewhere
	logFile *lumberjack.Logger
)

// Init points the global logger at a size-rotated file under dir.
func Init(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	f := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
	// Open eagerly so permission problems surface here.
	if _, err := f.Write(nil); err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}

	InitWriter(f, log.DebugLevel)

	mu.Lock()
	logFile = f
	mu.Unlock()
	return path, nil
}

// InitWriter points the global logger at w. Used for stderr output in
// non-interactive commands and in tests.
func InitWriter(w io.Writer, level log.Level) {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})

	mu.Lock()
	Logger = l
	mu.Unlock()
}

// Close flushes and releases the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = nil
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return Logger
}

// Info logs an info message
func Info(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Info(msg, keyvals...)
	}
}

// Debug logs a debug message
func Debug(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Debug(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Error(msg, keyvals...)
	}
}

// WithPrefix returns a logger with a prefix. Before Init it discards output.
func WithPrefix(prefix string) *log.Logger {
	if l := current(); l != nil {
		return l.WithPrefix(prefix)
	}
	return log.New(io.Discard)
}
