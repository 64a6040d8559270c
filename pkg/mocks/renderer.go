package mocks

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CanvasFromFunc  func(img image.Image) ports.Canvas
	DecodeImageFunc func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc func(img image.Image, width, height int) image.Image

	mu       sync.Mutex
	Canvases []*Canvas
}

func (m *Renderer) CanvasFrom(img image.Image) ports.Canvas {
	if m.CanvasFromFunc != nil {
		return m.CanvasFromFunc(img)
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	c := &Canvas{img: dst}
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records drawn text.
type Canvas struct {
	img   *image.RGBA
	Texts []string
	Rects int
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.Rects++
}

func (m *Canvas) DrawText(text string, x, y int, c color.Color) {
	m.Texts = append(m.Texts, text)
}

func (m *Canvas) MeasureText(text string) (float64, float64) {
	return float64(7 * len(text)), 13
}

func (m *Canvas) ToImage() *image.RGBA {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
