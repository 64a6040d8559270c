package coloreffects

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/user/hairline/pkg/colorfx"
	"github.com/user/hairline/pkg/pipeline"
)

func whiteFrame() pipeline.Buffer {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return pipeline.RawBuffer(pipeline.Buffer{}, img)
}

func TestElement_NonePassesThrough(t *testing.T) {
	e := New("invert")
	in := whiteFrame()

	out, err := e.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Image != in.Image {
		t.Error("expected the frame to pass through")
	}
}

func TestElement_XRayInverts(t *testing.T) {
	e := New("invert")
	if err := e.SetProperty(PropertyPreset, colorfx.XRay.External()); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}

	out, err := e.Execute(context.Background(), whiteFrame())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	c := color.NRGBAModel.Convert(out.Image.At(0, 0)).(color.NRGBA)
	if c.R > 10 {
		t.Errorf("expected white to turn dark, got %v", c)
	}
	if pipeline.FormatOf(out.Image) != pipeline.FormatNRGBA {
		t.Errorf("expected NRGBA output, got %s", pipeline.FormatOf(out.Image))
	}
}

func TestElement_Caps(t *testing.T) {
	e := New("invert")
	if _, ok := pipeline.RawCaps(pipeline.FormatRGBA).Intersect(e.SinkCaps()); ok {
		t.Error("coloreffects must only accept NRGBA")
	}
}
