// Package v4l2camera captures from a video4linux device with
// github.com/blackjack/webcam.
package v4l2camera

import "errors"

var (
	// ErrUnsupported is returned on platforms without V4L2.
	ErrUnsupported = errors.New("v4l2camera: video4linux is only available on linux")

	// ErrNoFormat is returned when the device offers none of the decodable
	// pixel formats.
	ErrNoFormat = errors.New("v4l2camera: no supported pixel format")

	// ErrReadTimeout is returned when the device delivers no frame in time.
	ErrReadTimeout = errors.New("v4l2camera: read timeout")

	// ErrEmptyFrame is returned when the device keeps delivering empty frames.
	ErrEmptyFrame = errors.New("v4l2camera: empty frame")
)

// DefaultDevice is opened when the properties name no device.
const DefaultDevice = "/dev/video0"
