package display

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/user/hairline/pkg/pipeline"
)

// Mode selects how frames reach the screen.
type Mode string

const (
	// ModeAuto tries the accelerated sink and falls back to the software one.
	ModeAuto Mode = "auto"
	// ModeAccelerated requires the accelerated sink.
	ModeAccelerated Mode = "accelerated"
	// ModeSoftware scales frames on the CPU.
	ModeSoftware Mode = "software"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAccelerated, ModeSoftware:
		return m, nil
	default:
		return "", fmt.Errorf("display: unknown mode %q", s)
	}
}

// CheckAccelerated reports whether an accelerated surface may be used in
// mode. getenv is usually os.Getenv.
func CheckAccelerated(mode Mode, getenv func(string) string) error {
	if mode == ModeSoftware {
		return fmt.Errorf("%w: software rendering selected", ErrSurfaceUnavailable)
	}
	if getenv("LIBGL_ALWAYS_SOFTWARE") == "1" {
		return fmt.Errorf("%w: LIBGL_ALWAYS_SOFTWARE is set", ErrSurfaceUnavailable)
	}
	return nil
}

// GLSink hands frames unscaled to the UI, which scales them on the GPU.
type GLSink struct {
	pipeline.Base
	slot *Slot
}

// NewGLSink creates a glsink element, or ErrSurfaceUnavailable when no
// accelerated surface may be used.
func NewGLSink(name string, slot *Slot, mode Mode, getenv func(string) string) (*GLSink, error) {
	if err := CheckAccelerated(mode, getenv); err != nil {
		return nil, err
	}
	return &GLSink{
		Base: pipeline.NewBase(name, "glsink", pipeline.RawCaps(pipeline.FormatRGBA, pipeline.FormatNRGBA), pipeline.Caps{}),
		slot: slot,
	}, nil
}

// Render publishes the frame.
func (s *GLSink) Render(ctx context.Context, buf pipeline.Buffer) error {
	s.slot.Put(buf.Image)
	return nil
}

// SoftSink scales frames to the drawing area on the CPU, keeping the aspect
// ratio and filling the borders with black.
type SoftSink struct {
	pipeline.Base
	slot   *Slot
	scaler draw.Scaler
}

// NewSoftSink creates a softsink element.
func NewSoftSink(name string, slot *Slot) *SoftSink {
	return &SoftSink{
		Base:   pipeline.NewBase(name, "softsink", pipeline.RawCaps(), pipeline.Caps{}),
		slot:   slot,
		scaler: draw.ApproxBiLinear,
	}
}

// Fit returns the largest rectangle with the aspect ratio of src centered
// in dst.
func Fit(src image.Point, dst image.Rectangle) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 || dst.Empty() {
		return image.Rectangle{}
	}
	w, h := dst.Dx(), dst.Dx()*src.Y/src.X
	if h > dst.Dy() {
		w, h = dst.Dy()*src.X/src.Y, dst.Dy()
	}
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Render scales the frame and publishes it. Frames pass unscaled while the
// UI has not reported its size yet.
func (s *SoftSink) Render(ctx context.Context, buf pipeline.Buffer) error {
	w, h := s.slot.Target()
	if w <= 0 || h <= 0 {
		s.slot.Put(buf.Image)
		return nil
	}

	// A new canvas per frame, the UI may still be drawing the previous one.
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	dst := Fit(buf.Image.Bounds().Size(), canvas.Bounds())
	s.scaler.Scale(canvas, dst, buf.Image, buf.Image.Bounds(), draw.Src, nil)
	s.slot.Put(canvas)
	return nil
}

// FakeSink counts and discards frames.
type FakeSink struct {
	pipeline.Base
	frames atomic.Uint64
}

// NewFakeSink creates a fakesink element.
func NewFakeSink(name string) *FakeSink {
	return &FakeSink{Base: pipeline.NewBase(name, "fakesink", pipeline.RawCaps(), pipeline.Caps{})}
}

// Render discards the frame.
func (s *FakeSink) Render(ctx context.Context, buf pipeline.Buffer) error {
	s.frames.Add(1)
	return nil
}

// Frames returns the number of frames rendered.
func (s *FakeSink) Frames() uint64 {
	return s.frames.Load()
}

var (
	_ pipeline.Sink = (*GLSink)(nil)
	_ pipeline.Sink = (*SoftSink)(nil)
	_ pipeline.Sink = (*FakeSink)(nil)
)
