// Package logger provides a small leveled logger with optional ANSI
// colors and an optional file sink.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelColors = map[Level]string{
	DEBUG: "\033[36m", // cyan
	INFO:  "\033[32m", // green
	WARN:  "\033[33m", // yellow
	ERROR: "\033[31m", // red
	FATAL: "\033[35m", // magenta
}

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Logger writes leveled, timestamped messages.
type Logger struct {
	level     Level
	out       *log.Logger
	file      *os.File
	useColors bool
}

// New creates a logger writing to stdout at the given level. Colors
// are enabled only when stdout is a terminal.
func New(level Level) *Logger {
	l := &Logger{
		level:     level,
		out:       log.New(os.Stdout, "", 0),
		useColors: true,
	}
	if info, _ := os.Stdout.Stat(); info != nil && info.Mode()&os.ModeCharDevice == 0 {
		l.useColors = false
	}
	return l
}

// NewMulti creates a logger writing to both stdout and a file,
// creating the file's directory if needed.
func NewMulti(level Level, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(level)
	l.out.SetOutput(io.MultiWriter(os.Stdout, file))
	l.file = file
	return l, nil
}

// Close closes the file sink if one is attached.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	prefix := fmt.Sprintf("%s [%s]", time.Now().Format("2006/01/02 15:04:05"), levelNames[level])
	if l.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	l.out.Println(prefix, fmt.Sprintf(format, v...))
	if level == FATAL {
		l.Close()
		os.Exit(1)
	}
}

// Debug logs a formatted debug message.
func (l *Logger) Debug(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }

// Info logs a formatted info message.
func (l *Logger) Info(format string, v ...interface{}) { l.logf(INFO, format, v...) }

// Warn logs a formatted warning message.
func (l *Logger) Warn(format string, v ...interface{}) { l.logf(WARN, format, v...) }

// Error logs a formatted error message.
func (l *Logger) Error(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// Fatal logs a formatted message and exits.
func (l *Logger) Fatal(format string, v ...interface{}) { l.logf(FATAL, format, v...) }
