package display

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/hairline/pkg/pipeline"
)

func noEnv(string) string { return "" }

func TestSlot_Notify(t *testing.T) {
	slot := NewSlot()
	if img, n := slot.Latest(); img != nil || n != 0 {
		t.Fatal("expected an empty slot")
	}

	notified := 0
	slot.OnUpdate(func() { notified++ })
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	slot.Put(img)

	got, n := slot.Latest()
	if got != img || n != 1 {
		t.Errorf("expected the stored frame and count 1, got %v and %d", got, n)
	}
	if notified != 1 {
		t.Errorf("expected one notification, got %d", notified)
	}
}

func TestCheckAccelerated(t *testing.T) {
	if err := CheckAccelerated(ModeAuto, noEnv); err != nil {
		t.Errorf("expected auto mode to allow acceleration, got %v", err)
	}
	if err := CheckAccelerated(ModeSoftware, noEnv); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}
	forced := func(k string) string {
		if k == "LIBGL_ALWAYS_SOFTWARE" {
			return "1"
		}
		return ""
	}
	if err := CheckAccelerated(ModeAccelerated, forced); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}
}

func TestNewGLSink_Unavailable(t *testing.T) {
	if _, err := NewGLSink("sink", NewSlot(), ModeSoftware, noEnv); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}
}

func TestGLSink_Render(t *testing.T) {
	slot := NewSlot()
	sink, err := NewGLSink("sink", slot, ModeAuto, noEnv)
	if err != nil {
		t.Fatalf("NewGLSink failed: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := sink.Render(context.Background(), pipeline.RawBuffer(pipeline.Buffer{}, img)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got, _ := slot.Latest(); got != img {
		t.Error("expected the frame to be handed over unscaled")
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		src  image.Point
		dst  image.Rectangle
		want image.Rectangle
	}{
		{image.Pt(640, 480), image.Rect(0, 0, 1280, 720), image.Rect(160, 0, 1120, 720)},
		{image.Pt(480, 640), image.Rect(0, 0, 480, 1280), image.Rect(0, 320, 480, 960)},
		{image.Pt(16, 9), image.Rect(0, 0, 32, 18), image.Rect(0, 0, 32, 18)},
		{image.Pt(0, 9), image.Rect(0, 0, 32, 18), image.Rectangle{}},
	}
	for _, c := range cases {
		if got := Fit(c.src, c.dst); got != c.want {
			t.Errorf("Fit(%v, %v) = %v, want %v", c.src, c.dst, got, c.want)
		}
	}
}

func TestSoftSink_ScalesToTarget(t *testing.T) {
	slot := NewSlot()
	slot.SetTarget(8, 4)
	sink := NewSoftSink("sink", slot)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	if err := sink.Render(context.Background(), pipeline.RawBuffer(pipeline.Buffer{}, src)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got, _ := slot.Latest()
	rgba, ok := got.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", got)
	}
	if rgba.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("expected 8x4, got %v", rgba.Bounds())
	}
	if c := rgba.RGBAAt(0, 0); c != (color.RGBA{A: 255}) {
		t.Errorf("expected black border, got %v", c)
	}
	if c := rgba.RGBAAt(4, 2); c.R < 200 {
		t.Errorf("expected red center, got %v", c)
	}
}

func TestSoftSink_NoTarget(t *testing.T) {
	slot := NewSlot()
	sink := NewSoftSink("sink", slot)
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))

	if err := sink.Render(context.Background(), pipeline.RawBuffer(pipeline.Buffer{}, img)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got, _ := slot.Latest(); got != img {
		t.Error("expected the frame to pass unscaled")
	}
}

func TestFakeSink(t *testing.T) {
	sink := NewFakeSink("sink")
	for i := 0; i < 3; i++ {
		sink.Render(context.Background(), pipeline.Buffer{})
	}
	if sink.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", sink.Frames())
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"auto", "accelerated", "software"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseMode("vulkan"); err == nil {
		t.Error("expected error")
	}
}
