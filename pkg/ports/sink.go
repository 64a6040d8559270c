package ports

import (
	"image"
)

// DebugSink stores frames tapped from a running pipeline for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRawFrame saves a frame as it came out of the source.
	SaveRawFrame(index uint64, img image.Image) error

	// SaveProcessedFrame saves a frame as it reached the display sink.
	SaveProcessedFrame(index uint64, img image.Image) error
}
