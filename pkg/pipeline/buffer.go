package pipeline

import (
	"image"
	"time"
)

// Buffer is one unit of data flowing between elements. Raw video buffers
// carry Image, encoded buffers carry Data.
type Buffer struct {
	Caps     Caps
	Image    image.Image
	Data     []byte
	Width    int
	Height   int
	Sequence uint64        // Frame number within the current session
	PTS      time.Duration // Time since the session started
}

// RawBuffer returns a raw video buffer for img, keeping the sequence and
// timestamp of prev.
func RawBuffer(prev Buffer, img image.Image) Buffer {
	size := img.Bounds().Size()
	caps := RawCaps()
	if f := FormatOf(img); f != "" {
		caps = RawCaps(f)
	}
	return Buffer{
		Caps:     caps,
		Image:    img,
		Width:    size.X,
		Height:   size.Y,
		Sequence: prev.Sequence,
		PTS:      prev.PTS,
	}
}
