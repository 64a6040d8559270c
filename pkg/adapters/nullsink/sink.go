// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/hairline/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRawFrame does nothing.
func (s *Sink) SaveRawFrame(index uint64, img image.Image) error {
	return nil
}

// SaveProcessedFrame does nothing.
func (s *Sink) SaveProcessedFrame(index uint64, img image.Image) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
