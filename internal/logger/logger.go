package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type fieldsKey struct{}

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// NewContext returns a copy of ctx carrying fields that WithContext adds to every entry.
// Fields already present in ctx are kept unless overwritten.
func NewContext(ctx context.Context, fields logrus.Fields) context.Context {
	merged := logrus.Fields{}
	if existing, ok := ctx.Value(fieldsKey{}).(logrus.Fields); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// WithContext creates a logger tagged with the caller fields stored in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()

	fields, ok := ctx.Value(fieldsKey{}).(logrus.Fields)
	if !ok || len(fields) == 0 {
		logger.Entry = logger.Entry.WithField("user", "unknown")
		return logger
	}
	if _, hasUser := fields["user"]; !hasUser {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}
	logger.Entry = logger.Entry.WithFields(fields)

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Setup configures the standard logrus logger: JSON to stdout at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
