// Package display implements the video sinks and the frame slot they share
// with the UI host.
package display

import (
	"image"
	"sync"
)

// Slot holds the most recent frame for the UI to draw. The streaming
// goroutine writes it, the event loop reads it.
type Slot struct {
	mu       sync.Mutex
	frame    image.Image
	frames   uint64
	width    int
	height   int
	onUpdate func()
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Put stores img and notifies the UI.
func (s *Slot) Put(img image.Image) {
	s.mu.Lock()
	s.frame = img
	s.frames++
	notify := s.onUpdate
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Latest returns the most recent frame, nil before the first one, and the
// number of frames stored so far.
func (s *Slot) Latest() (image.Image, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.frames
}

// OnUpdate registers fn to be called after every Put. fn must not block.
func (s *Slot) OnUpdate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// SetTarget records the size of the drawing area in pixels.
func (s *Slot) SetTarget(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// Target returns the size of the drawing area, zero until the UI set it.
func (s *Slot) Target() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
