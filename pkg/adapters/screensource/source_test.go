package screensource

import (
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/user/hairline/pkg/ports"
)

func fakeCapture(calls *[]int) Capturer {
	return func(i int) (*image.RGBA, error) {
		*calls = append(*calls, i)
		return image.NewRGBA(image.Rect(0, 0, 32, 18)), nil
	}
}

func TestSource_CapturesSelectedDisplay(t *testing.T) {
	var calls []int
	src := NewWithCapturer(fakeCapture(&calls), 2)
	if err := src.Open(ports.VideoProperties{Device: "1", FrameRate: 1000, NumFrames: 2}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	for i := 0; i < 2; i++ {
		if _, err := src.Read(context.Background()); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
	}
	if _, err := src.Read(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if len(calls) != 2 || calls[0] != 1 {
		t.Errorf("expected two captures of display 1, got %v", calls)
	}
}

func TestSource_UnknownDisplay(t *testing.T) {
	var calls []int
	for _, dev := range []string{"2", "-1", "primary"} {
		src := NewWithCapturer(fakeCapture(&calls), 2)
		if err := src.Open(ports.VideoProperties{Device: dev}); !errors.Is(err, ErrNoDisplay) {
			t.Errorf("device %q: expected ErrNoDisplay, got %v", dev, err)
		}
	}
}

func TestSource_CaptureError(t *testing.T) {
	src := NewWithCapturer(func(int) (*image.RGBA, error) {
		return nil, errors.New("no X server")
	}, 1)
	if err := src.Open(ports.VideoProperties{FrameRate: 1000}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if _, err := src.Read(context.Background()); err == nil {
		t.Error("expected error")
	}
}
