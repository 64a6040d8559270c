package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// Logger is a mock implementation of ports.Logger that records formatted
// messages.
type Logger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	prefix  string
}

// LogEntry is one recorded message.
type LogEntry struct {
	Level   ports.LogLevel
	Message string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (m *Logger) record(level ports.LogLevel, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{Level: level, Message: m.prefix + fmt.Sprintf(msg, args...)})
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.record(ports.LevelDebug, msg, args...) }
func (m *Logger) Info(msg string, args ...interface{})  { m.record(ports.LevelInfo, msg, args...) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.record(ports.LevelWarn, msg, args...) }
func (m *Logger) Error(msg string, args ...interface{}) { m.record(ports.LevelError, msg, args...) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: m.mu, entries: m.entries, prefix: "[" + component + "] "}
}

// Entries returns a copy of the recorded messages.
func (m *Logger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), *m.entries...)
}

// Contains reports whether any recorded message contains s.
func (m *Logger) Contains(s string) bool {
	for _, e := range m.Entries() {
		if strings.Contains(e.Message, s) {
			return true
		}
	}
	return false
}

// Count returns the number of recorded messages containing s.
func (m *Logger) Count(s string) int {
	n := 0
	for _, e := range m.Entries() {
		if strings.Contains(e.Message, s) {
			n++
		}
	}
	return n
}

var _ ports.Logger = (*Logger)(nil)
