// Package coloreffects implements the coloreffects element.
package coloreffects

import (
	"context"

	"github.com/user/hairline/pkg/colorfx"
	"github.com/user/hairline/pkg/pipeline"
)

// PropertyPreset holds the effect as a colorfx.Preset value.
const PropertyPreset = "preset"

// Element renders NRGBA frames with the preset selected by its property.
type Element struct {
	pipeline.Base
	pipeline.Properties
	preset *pipeline.Property
}

// New creates a coloreffects element with no effect.
func New(name string) *Element {
	preset := pipeline.NewProperty(PropertyPreset, colorfx.None.External())
	caps := pipeline.RawCaps(pipeline.FormatNRGBA)
	return &Element{
		Base:       pipeline.NewBase(name, "coloreffects", caps, caps),
		Properties: pipeline.Properties{preset},
		preset:     preset,
	}
}

// Execute applies the current preset.
func (e *Element) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	p := colorfx.FromExternal(e.preset.Load())
	if p == colorfx.None {
		return buf, nil
	}
	return pipeline.RawBuffer(buf, p.Apply(buf.Image)), nil
}

var (
	_ pipeline.Filter         = (*Element)(nil)
	_ pipeline.PropertyHolder = (*Element)(nil)
)
