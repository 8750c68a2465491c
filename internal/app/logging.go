package app

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the level name.
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

// ParseLogLevel parses a level name, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger writes leveled, timestamped lines. The terminal owns stdout
// and stderr while the editor runs, so logs go to a file.
type Logger struct {
	level    LogLevel
	output   io.Writer
	closer   io.Closer
	disabled bool
}

// NewLogger creates a logger writing to w.
func NewLogger(level LogLevel, w io.Writer) *Logger {
	return &Logger{level: level, output: w}
}

// NewFileLogger creates a logger appending to the named file.
func NewFileLogger(level LogLevel, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{level: level, output: f, closer: f}, nil
}

// NullLogger discards everything.
var NullLogger = &Logger{disabled: true}

// Close releases the log file if the logger owns one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LogLevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LogLevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if l.disabled || l.output == nil || level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	timestamp := time.Now().Format("2006-01-02T15:04:05.000")
	fmt.Fprintf(l.output, "%s [%s] %s\n", timestamp, level, msg)
}
