// Package screensource captures a display with github.com/kbinani/screenshot.
package screensource

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"time"

	"github.com/kbinani/screenshot"

	"github.com/user/hairline/pkg/ports"
)

// ErrNoDisplay is returned when the requested display does not exist.
var ErrNoDisplay = errors.New("screensource: no such display")

// DefaultFrameRate is used when the properties leave it unset.
const DefaultFrameRate = 15

// Capturer grabs one picture of a display.
type Capturer func(displayIndex int) (*image.RGBA, error)

// Source implements ports.VideoSource.
type Source struct {
	capture  Capturer
	displays func() int

	index int
	props ports.VideoProperties
	tick  *time.Ticker
	read  int
}

// New creates a source capturing with kbinani/screenshot.
func New() *Source {
	return &Source{capture: screenshot.CaptureDisplay, displays: screenshot.NumActiveDisplays}
}

// NewWithCapturer creates a source using capture for displayCount displays.
func NewWithCapturer(capture Capturer, displayCount int) *Source {
	return &Source{capture: capture, displays: func() int { return displayCount }}
}

// Open selects the display named by props.Device, an index, "" for the
// primary display.
func (s *Source) Open(props ports.VideoProperties) error {
	index := 0
	if props.Device != "" {
		i, err := strconv.Atoi(props.Device)
		if err != nil {
			return fmt.Errorf("%w: %q is not a display index", ErrNoDisplay, props.Device)
		}
		index = i
	}
	if n := s.displays(); index < 0 || index >= n {
		return fmt.Errorf("%w: %d of %d", ErrNoDisplay, index, n)
	}
	if props.FrameRate == 0 {
		props.FrameRate = DefaultFrameRate
	}

	s.index = index
	s.props = props
	s.tick = time.NewTicker(time.Duration(float64(time.Second) / props.FrameRate))
	s.read = 0
	return nil
}

// Read waits for the next tick and captures the display.
func (s *Source) Read(ctx context.Context) (image.Image, error) {
	if s.tick == nil {
		return nil, fmt.Errorf("screensource: not opened")
	}
	if s.props.NumFrames > 0 && s.read >= s.props.NumFrames {
		return nil, io.EOF
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.tick.C:
	}

	img, err := s.capture(s.index)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", s.index, err)
	}
	s.read++
	return img, nil
}

// Close stops capturing.
func (s *Source) Close() error {
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
	return nil
}

var _ ports.VideoSource = (*Source)(nil)
