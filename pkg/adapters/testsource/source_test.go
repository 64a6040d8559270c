package testsource

import (
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/user/hairline/pkg/ports"
)

func TestSource_FiniteStream(t *testing.T) {
	src := New()
	if err := src.Open(ports.VideoProperties{Width: 70, Height: 40, FrameRate: 1000, NumFrames: 3}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	for i := 0; i < 3; i++ {
		img, err := src.Read(context.Background())
		if err != nil {
			t.Fatalf("Read %d failed: %v", i, err)
		}
		if img.Bounds() != image.Rect(0, 0, 70, 40) {
			t.Errorf("unexpected bounds %v", img.Bounds())
		}
	}
	if _, err := src.Read(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestSource_ColorBars(t *testing.T) {
	src := New()
	if err := src.Open(ports.VideoProperties{Width: 70, Height: 40, FrameRate: 1000}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	img, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	ycbcr := img.(*image.YCbCr)

	// First bar is 75% white, last bar is blue-ish.
	if got := ycbcr.YCbCrAt(0, 0); got.Y != 176 || got.Cb != 128 {
		t.Errorf("unexpected first bar %v", got)
	}
	if got := ycbcr.YCbCrAt(69, 0); got.Cb != 240 {
		t.Errorf("unexpected last bar %v", got)
	}
}

func TestSource_FramesDoNotShareMemory(t *testing.T) {
	src := New()
	if err := src.Open(ports.VideoProperties{Width: 8, Height: 8, FrameRate: 1000}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	a, _ := src.Read(context.Background())
	b, _ := src.Read(context.Background())
	a.(*image.YCbCr).Y[0] = 1
	if b.(*image.YCbCr).Y[0] == 1 {
		t.Error("frames must not share pixel memory")
	}
}

func TestSource_Cancelled(t *testing.T) {
	src := New()
	if err := src.Open(ports.VideoProperties{Width: 8, Height: 8, FrameRate: 0.001}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSource_RejectsOddWidth(t *testing.T) {
	if err := New().Open(ports.VideoProperties{Width: 7, Height: 8}); err == nil {
		t.Error("expected error for odd width")
	}
}
