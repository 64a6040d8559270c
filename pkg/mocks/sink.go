package mocks

import (
	"image"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	RawFrames       map[uint64]image.Image
	ProcessedFrames map[uint64]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:         enabled,
		RawFrames:       make(map[uint64]image.Image),
		ProcessedFrames: make(map[uint64]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRawFrame(index uint64, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RawFrames[index] = img
	return nil
}

func (m *DebugSink) SaveProcessedFrame(index uint64, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessedFrames[index] = img
	return nil
}

// Counts returns the number of saved raw and processed frames.
func (m *DebugSink) Counts() (raw, processed int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.RawFrames), len(m.ProcessedFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
