// ABOUTME: Structured logger implementation backed by sirupsen/logrus
// ABOUTME: Supports JSON or text output, level filtering and size-rotated log files

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	lr "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// Output defaults to stdout
	Output io.Writer

	// File, when set, additionally writes to a rotated log file
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger implements the Logger interface on top of logrus
type Logger struct {
	entry *lr.Logger
	file  *lumberjack.Logger
}

// NewLogger builds a logger from opts
func NewLogger(opts Options) (*Logger, error) {
	level := lr.InfoLevel
	if opts.Level != "" {
		parsed, err := lr.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	base := lr.New()
	base.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		base.SetFormatter(&lr.JSONFormatter{})
	case "text":
		base.SetFormatter(&lr.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or text", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	l := &Logger{entry: base}
	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		out = io.MultiWriter(out, l.file)
	}
	base.SetOutput(out)

	return l, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Error(msg)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
