package h264codec

import "errors"

var (
	// ErrNotInitialized is returned when codec methods are called before Begin
	// or after End.
	ErrNotInitialized = errors.New("h264codec: codec not initialized")

	// ErrFFmpegNotFound is returned when no ffmpeg executable can be found.
	ErrFFmpegNotFound = errors.New("h264codec: ffmpeg not found")

	// ErrFrameSize is returned when a frame does not match the size the
	// stream was started with.
	ErrFrameSize = errors.New("h264codec: frame size changed")

	// ErrProcessExited is returned when the ffmpeg process is gone.
	ErrProcessExited = errors.New("h264codec: ffmpeg exited")
)
