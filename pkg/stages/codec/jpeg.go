// Package codec implements encoder and decoder element pairs. Placing a pair
// between two raw elements sends every frame through a real compression
// round trip.
package codec

import (
	"context"
	"fmt"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

// JPEGEncoder compresses each raw frame into a JPEG picture.
type JPEGEncoder struct {
	pipeline.Base
	renderer ports.Renderer
	quality  int
}

// NewJPEGEncoder creates a jpegenc element. quality 0 selects the renderer
// default.
func NewJPEGEncoder(name string, renderer ports.Renderer, quality int) *JPEGEncoder {
	return &JPEGEncoder{
		Base:     pipeline.NewBase(name, "jpegenc", pipeline.RawCaps(), pipeline.Caps{Media: pipeline.MediaJPEG}),
		renderer: renderer,
		quality:  quality,
	}
}

// Execute encodes the frame.
func (e *JPEGEncoder) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	data, err := e.renderer.EncodeImage(buf.Image, ports.FormatJPEG, e.quality)
	if err != nil {
		return buf, fmt.Errorf("encode frame %d: %w", buf.Sequence, err)
	}
	return pipeline.Buffer{
		Caps:     e.SrcCaps(),
		Data:     data,
		Width:    buf.Width,
		Height:   buf.Height,
		Sequence: buf.Sequence,
		PTS:      buf.PTS,
	}, nil
}

// JPEGDecoder turns JPEG pictures back into raw frames.
type JPEGDecoder struct {
	pipeline.Base
	renderer ports.Renderer
}

// NewJPEGDecoder creates a jpegdec element.
func NewJPEGDecoder(name string, renderer ports.Renderer) *JPEGDecoder {
	return &JPEGDecoder{
		Base:     pipeline.NewBase(name, "jpegdec", pipeline.Caps{Media: pipeline.MediaJPEG}, pipeline.RawCaps()),
		renderer: renderer,
	}
}

// Execute decodes the picture.
func (d *JPEGDecoder) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	img, err := d.renderer.DecodeImage(buf.Data, ports.FormatJPEG)
	if err != nil {
		return buf, fmt.Errorf("decode frame %d: %w", buf.Sequence, err)
	}
	return pipeline.RawBuffer(buf, img), nil
}

var (
	_ pipeline.Filter = (*JPEGEncoder)(nil)
	_ pipeline.Filter = (*JPEGDecoder)(nil)
)
