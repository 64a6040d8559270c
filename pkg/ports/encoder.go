package ports

import (
	"image"
)

// VideoEncoder compresses a stream of frames of one fixed size.
type VideoEncoder interface {
	// Begin starts a new stream with the specified dimensions and frame rate.
	Begin(width, height int, fps float64, opts EncoderOptions) error

	// EncodeFrame submits a frame and returns the encoded bytes that became
	// available since the previous call. Streaming encoders may return no
	// bytes for the first frames.
	EncodeFrame(img image.Image) ([]byte, error)

	// End finishes the stream and releases encoder resources.
	End() error
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate int // Target bitrate in kbps, 0 for the codec default
	Quality int // Codec quality, 1-100 (higher is better), 0 for the default
}
