package ports

import (
	"image"
)

// VideoDecoder turns encoded bytes produced by the matching VideoEncoder back
// into frames.
type VideoDecoder interface {
	// DecodeFrame feeds data into the decoder and returns the most recent
	// complete picture of the given size. It returns a nil image when no
	// picture has been decoded yet.
	DecodeFrame(data []byte, width, height int) (image.Image, error)

	// Close releases decoder resources.
	Close() error
}
