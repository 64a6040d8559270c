package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image drawing and still-image codecs.
type Renderer interface {
	// CanvasFrom creates a drawing canvas initialized with a copy of img.
	CanvasFrom(img image.Image) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format. quality is only
	// used by FormatJPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage scales img to exactly width x height.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations on top of a video frame.
type Canvas interface {
	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawText draws text with its top-left corner at x, y.
	DrawText(text string, x, y int, c color.Color)

	// MeasureText returns the width and height of the text.
	MeasureText(text string) (width, height float64)

	// ToImage returns the canvas as an image.
	ToImage() *image.RGBA
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
