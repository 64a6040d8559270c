package ports

import (
	"context"
	"image"
)

// VideoProperties selects the capture mode of a VideoSource.
type VideoProperties struct {
	Device    string  // Device path or display index, source specific
	Width     int     // Requested frame width
	Height    int     // Requested frame height
	FrameRate float64 // Requested frames per second
	NumFrames int     // Frames to produce before io.EOF, 0 for unlimited
}

// VideoSource produces frames from a capture device.
type VideoSource interface {
	// Open acquires the device and starts capturing.
	Open(props VideoProperties) error

	// Read blocks until the next frame is available. It returns io.EOF when
	// the stream ended and ctx.Err() when ctx is cancelled.
	Read(ctx context.Context) (image.Image, error)

	// Close stops capturing and releases the device.
	Close() error
}
