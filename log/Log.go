// Package log wraps logrus with a logger configured from a LogConfig
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogConfig stores the config for logging purpose
type LogConfig struct {
	// Path of the log file. Logs are written to stderr if Path is empty.
	Path string `json:"path"`
	// Format to log, one of json|text
	Format string `json:"format"`
	// Level log level, one of panic|fatal|error|warn|warning|info|debug|trace
	Level string `json:"level"`
}

// DefaultLogConfig returns the default LogConfig: text logs at level
// info on stderr
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Path:   "",
		Format: "text",
		Level:  "info",
	}
}

// LogParams wrapper around key values used for logging
type LogParams map[string]interface{}

// Logger for logging
type Logger struct {
	entry *logrus.Entry

	file *os.File
}

// NewLogger instantiates logger based on the config
func NewLogger(c LogConfig) (*Logger, error) {
	l := logrus.New()

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{})
	default:
		return nil, errors.Errorf("newLogger: no such format %q", c.Format)
	}

	if c.Level != "" {
		level, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, errors.Wrap(err, "newLogger")
		}
		l.SetLevel(level)
	}

	var file *os.File
	if c.Path != "" {
		var err error
		file, err = os.Create(c.Path)
		if err != nil {
			return nil, errors.Wrap(err, "newLogger: could not create log file")
		}
		l.SetOutput(file)
	}

	return &Logger{
		entry: logrus.NewEntry(l),
		file:  file,
	}, nil
}

// NewDiscardLogger returns a Logger which discards all logs
func NewDiscardLogger() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

// Debug logs a debug message
func (l *Logger) Debug(s string) {
	l.entry.Debug(s)
}

// Info logs a message with level `info`
func (l *Logger) Info(s string) {
	l.entry.Info(s)
}

// Warn logs a message with level `warning`
func (l *Logger) Warn(s string) {
	l.entry.Warn(s)
}

// Error logs a message with level `error`
func (l *Logger) Error(s string) {
	l.entry.Error(s)
}

// With returns a logger initialized with the parameters
func (l *Logger) With(params LogParams) *Logger {
	fields := logrus.Fields{}
	for k, v := range params {
		fields[k] = v
	}

	entry := l.entry.WithFields(fields)
	return &Logger{
		entry: entry,
		file:  nil,
	}
}

// SetLevel sets the level of the logger
func (l *Logger) SetLevel(level string) error {
	levelL, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "setLevel")
	}
	l.entry.Logger.SetLevel(levelL)
	return nil
}

// SetOutput sets the writer logs are written to
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// Destroy should be called when exiting to close the log file
func (l *Logger) Destroy() {
	if l.file != nil {
		l.file.Close()
	}
}
