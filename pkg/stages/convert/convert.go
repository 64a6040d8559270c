// Package convert implements the videoconvert element.
package convert

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/user/hairline/pkg/pipeline"
)

// Formats lists the output formats in order of preference.
var Formats = []string{pipeline.FormatNRGBA, pipeline.FormatRGBA}

// Element converts raw frames of any format to the format chosen when it is
// linked downstream.
type Element struct {
	pipeline.Base
	format string
}

// New creates a convert element producing NRGBA until negotiated.
func New(name string) *Element {
	return &Element{
		Base:   pipeline.NewBase(name, "videoconvert", pipeline.RawCaps(), pipeline.RawCaps(Formats...)),
		format: Formats[0],
	}
}

// Negotiate picks the first supported format the downstream element accepts.
func (e *Element) Negotiate(downstream pipeline.Caps) error {
	common, ok := pipeline.RawCaps(Formats...).Intersect(downstream)
	if !ok {
		return fmt.Errorf("%w: %s accepts none of %v", pipeline.ErrCapsMismatch, downstream, Formats)
	}
	e.format = common.Formats[0]
	e.SetSrcCaps(pipeline.RawCaps(e.format))
	return nil
}

// Format returns the negotiated output format.
func (e *Element) Format() string {
	return e.format
}

// Execute converts the frame when its format differs from the output format.
func (e *Element) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	if pipeline.FormatOf(buf.Image) == e.format {
		return buf, nil
	}
	switch e.format {
	case pipeline.FormatNRGBA:
		return pipeline.RawBuffer(buf, imaging.Clone(buf.Image)), nil
	default:
		src := buf.Image
		dst := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return pipeline.RawBuffer(buf, dst), nil
	}
}

var (
	_ pipeline.Filter     = (*Element)(nil)
	_ pipeline.Negotiator = (*Element)(nil)
)
