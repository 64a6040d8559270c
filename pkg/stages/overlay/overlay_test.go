package overlay

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/user/hairline/pkg/mocks"
	"github.com/user/hairline/pkg/pipeline"
)

func TestFormatPTS(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "00:00:00.000",
		1234 * time.Millisecond: "00:00:01.234",
		time.Hour + 2*time.Minute + 3*time.Second: "01:02:03.000",
		-time.Second: "00:00:00.000",
	}
	for d, want := range cases {
		if got := FormatPTS(d); got != want {
			t.Errorf("FormatPTS(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestTimeOverlay_Execute(t *testing.T) {
	renderer := &mocks.Renderer{}
	o := New("overlay", renderer)
	in := pipeline.RawBuffer(pipeline.Buffer{PTS: 1500 * time.Millisecond}, image.NewNRGBA(image.Rect(0, 0, 64, 32)))

	out, err := o.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(renderer.Canvases) != 1 {
		t.Fatalf("expected one canvas, got %d", len(renderer.Canvases))
	}
	c := renderer.Canvases[0]
	if len(c.Texts) != 1 || c.Texts[0] != "00:00:01.500" {
		t.Errorf("unexpected texts %v", c.Texts)
	}
	if c.Rects != 1 {
		t.Errorf("expected a background rectangle, got %d", c.Rects)
	}
	if pipeline.FormatOf(out.Image) != pipeline.FormatRGBA {
		t.Errorf("expected RGBA output, got %T", out.Image)
	}
	if out.Width != 64 || out.Height != 32 {
		t.Errorf("expected 64x32, got %dx%d", out.Width, out.Height)
	}
}
