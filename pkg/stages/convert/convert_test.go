package convert

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/hairline/pkg/pipeline"
)

func TestElement_ConvertsToNRGBA(t *testing.T) {
	e := New("convert")
	src := image.NewYCbCr(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio422)

	out, err := e.Execute(context.Background(), pipeline.RawBuffer(pipeline.Buffer{}, src))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, ok := out.Image.(*image.NRGBA); !ok {
		t.Errorf("expected *image.NRGBA, got %T", out.Image)
	}
	if out.Caps.String() != "video/x-raw,format=NRGBA" {
		t.Errorf("unexpected caps %s", out.Caps)
	}
}

func TestElement_PassThrough(t *testing.T) {
	e := New("convert")
	in := pipeline.RawBuffer(pipeline.Buffer{}, image.NewNRGBA(image.Rect(0, 0, 2, 2)))

	out, err := e.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Image != in.Image {
		t.Error("expected the frame to pass through unchanged")
	}
}

func TestElement_NegotiatesRGBA(t *testing.T) {
	e := New("convert")
	if err := e.Negotiate(pipeline.RawCaps(pipeline.FormatRGBA)); err != nil {
		t.Fatalf("Negotiate failed: %v", err)
	}
	if e.Format() != pipeline.FormatRGBA {
		t.Errorf("expected RGBA, got %s", e.Format())
	}

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	out, err := e.Execute(context.Background(), pipeline.RawBuffer(pipeline.Buffer{}, src))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	rgba, ok := out.Image.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", out.Image)
	}
	if rgba.RGBAAt(0, 0).R != 255 {
		t.Errorf("expected red pixel, got %v", rgba.RGBAAt(0, 0))
	}
}

func TestElement_NegotiateAnyPrefersNRGBA(t *testing.T) {
	e := New("convert")
	if err := e.Negotiate(pipeline.RawCaps()); err != nil {
		t.Fatalf("Negotiate failed: %v", err)
	}
	if e.Format() != pipeline.FormatNRGBA {
		t.Errorf("expected NRGBA, got %s", e.Format())
	}
}

func TestElement_NegotiateMismatch(t *testing.T) {
	e := New("convert")
	err := e.Negotiate(pipeline.Caps{Media: pipeline.MediaJPEG})
	if !errors.Is(err, pipeline.ErrCapsMismatch) {
		t.Errorf("expected ErrCapsMismatch, got %v", err)
	}
}
