// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/hairline/pkg/ports"
)

// DefaultJPEGQuality is used when EncodeImage is called with quality 0.
const DefaultJPEGQuality = 85

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CanvasFrom creates a canvas holding a copy of img.
func (r *Renderer) CanvasFrom(img image.Image) ports.Canvas {
	return &Canvas{dc: gg.NewContextForImage(img)}
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if quality <= 0 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawRoundedRect draws a filled rounded rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Fill()
}

// DrawText draws text in the default face with its top-left corner at x, y.
func (c *Canvas) DrawText(text string, x, y int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)
}

// MeasureText returns the size of text in the default face.
func (c *Canvas) MeasureText(text string) (float64, float64) {
	return c.dc.MeasureString(text)
}

// ToImage returns the canvas as an image.
func (c *Canvas) ToImage() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

var _ ports.Canvas = (*Canvas)(nil)
