// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Maps the core field maps onto logrus fields, optionally teeing into a rotating file

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the log file
const (
	fileMaxSizeMB  = 500
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
	file  *lumberjack.Logger
}

// Options configures a Logger
type Options struct {
	// Level is a logrus level name ("debug", "info", "warn", "error"); defaults to info
	Level string

	// Format is "json" or "text"; defaults to text
	Format string

	// Output defaults to stdout
	Output io.Writer

	// File, when set, also writes every entry to this path with size based rotation
	File string
}

// New creates a new logrus-backed logger
func New(opts Options) *Logger {
	l := logrus.New()

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}

	var file *lumberjack.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(out, file)
	}
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: l, file: file}
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
