// Package logging builds the charmbracelet/log logger used across labmap,
// optionally teeing output into a size-rotated log file.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Prefix is printed before every log line.
const Prefix = "labmap"

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// Options configures New.
type Options struct {
	Level     string    // debug, info, warn or error; anything else means info
	Output    io.Writer // Console destination, os.Stderr when nil
	File      FileConfig
	Timestamp bool
}

// Logger wraps a charmbracelet logger and the file it may write to.
type Logger struct {
	*log.Logger
	notices *log.Logger
	file    *lumberjack.Logger
}

// New creates a logger writing to opts.Output and, when opts.File.Path is
// set, to a rotating log file.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var file *lumberjack.Logger
	if opts.File.Path != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		out = io.MultiWriter(out, file)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: opts.Timestamp,
		Prefix:          Prefix,
		Level:           ParseLevel(opts.Level),
	})
	// Same destination, pinned at warn so input diagnostics survive --log-level error.
	notices := log.NewWithOptions(out, log.Options{
		ReportTimestamp: opts.Timestamp,
		Prefix:          Prefix,
		Level:           log.WarnLevel,
	})

	return &Logger{Logger: logger, notices: notices, file: file}
}

// Notice logs a WARN line whatever the configured level is.
// It is meant for problems in the user's input that must always be reported.
func (l *Logger) Notice(msg string, keyvals ...any) {
	l.notices.Warn(msg, keyvals...)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return New(Options{Output: io.Discard, Level: "error"})
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
