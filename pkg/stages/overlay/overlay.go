// Package overlay implements the timeoverlay element.
package overlay

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

const (
	margin  = 8
	padding = 4
	radius  = 4
)

var (
	background = color.NRGBA{A: 160}
	foreground = color.White
)

// TimeOverlay draws the running time of the session in the top-left corner.
type TimeOverlay struct {
	pipeline.Base
	renderer ports.Renderer
}

// New creates a timeoverlay element.
func New(name string, renderer ports.Renderer) *TimeOverlay {
	return &TimeOverlay{
		Base:     pipeline.NewBase(name, "timeoverlay", pipeline.RawCaps(), pipeline.RawCaps(pipeline.FormatRGBA)),
		renderer: renderer,
	}
}

// FormatPTS renders a timestamp as hh:mm:ss.mmm.
func FormatPTS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

// Execute draws the label onto a copy of the frame.
func (o *TimeOverlay) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	text := FormatPTS(buf.PTS)
	canvas := o.renderer.CanvasFrom(buf.Image)
	w, h := canvas.MeasureText(text)
	canvas.DrawRoundedRect(margin, margin, int(w)+2*padding, int(h)+2*padding, radius, background)
	canvas.DrawText(text, margin+padding, margin+padding, foreground)
	return pipeline.RawBuffer(buf, canvas.ToImage()), nil
}

var _ pipeline.Filter = (*TimeOverlay)(nil)
