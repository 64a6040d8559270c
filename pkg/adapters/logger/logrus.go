package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/user/hairline/pkg/ports"
)

// LogrusLogger writes structured log entries through logrus. Messages are
// not translated so that the entries stay stable for log processors.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a logger writing JSON entries to w.
func NewLogrus(level ports.LogLevel, w io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrusLevel(level))
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func logrusLevel(level ports.LogLevel) logrus.Level {
	switch level {
	case ports.LevelDebug:
		return logrus.DebugLevel
	case ports.LevelWarn:
		return logrus.WarnLevel
	case ports.LevelError:
		return logrus.ErrorLevel
	case ports.LevelQuiet:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// Debug logs a debug message.
func (l *LogrusLogger) Debug(msg string, args ...interface{}) {
	l.entry.Debug(fmt.Sprintf(msg, args...))
}

// Info logs an informational message.
func (l *LogrusLogger) Info(msg string, args ...interface{}) {
	l.entry.Info(fmt.Sprintf(msg, args...))
}

// Warn logs a warning message.
func (l *LogrusLogger) Warn(msg string, args ...interface{}) {
	l.entry.Warn(fmt.Sprintf(msg, args...))
}

// Error logs an error message.
func (l *LogrusLogger) Error(msg string, args ...interface{}) {
	l.entry.Error(fmt.Sprintf(msg, args...))
}

// WithComponent returns a logger adding a component field to every entry.
func (l *LogrusLogger) WithComponent(component string) ports.Logger {
	return &LogrusLogger{entry: l.entry.WithField("component", component)}
}
