package flip

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/hairline/pkg/orientation"
	"github.com/user/hairline/pkg/pipeline"
)

func frame(w, h int) pipeline.Buffer {
	return pipeline.RawBuffer(pipeline.Buffer{Sequence: 3}, image.NewNRGBA(image.Rect(0, 0, w, h)))
}

func TestElement_Identity(t *testing.T) {
	e := New("flip")
	in := frame(4, 2)

	out, err := e.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Image != in.Image {
		t.Error("identity must pass the frame through")
	}
}

func TestElement_RotationSwapsAxes(t *testing.T) {
	e := New("flip")
	if err := e.SetProperty(PropertyMethod, orientation.Rotate90CW.External()); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}

	out, err := e.Execute(context.Background(), frame(4, 2))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Width != 2 || out.Height != 4 {
		t.Errorf("expected 2x4, got %dx%d", out.Width, out.Height)
	}
	if out.Sequence != 3 {
		t.Errorf("expected sequence to be kept, got %d", out.Sequence)
	}
}

func TestElement_OutOfRangeMethod(t *testing.T) {
	e := New("flip")
	if err := e.SetProperty(PropertyMethod, 9); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}

	in := frame(4, 2)
	out, err := e.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Image != in.Image {
		t.Error("out-of-range method must behave as identity")
	}
}

func TestElement_Properties(t *testing.T) {
	e := New("flip")

	v, err := e.GetProperty(PropertyMethod)
	if err != nil || v != 0 {
		t.Errorf("expected method 0, got %d (%v)", v, err)
	}
	if _, err := e.GetProperty("preset"); !errors.Is(err, pipeline.ErrNoSuchProperty) {
		t.Errorf("expected ErrNoSuchProperty, got %v", err)
	}
}
