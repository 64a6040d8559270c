// Package testsource provides a synthetic video source drawing color bars,
// a gray gradation and a noise area, paced at the requested frame rate.
package testsource

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/user/hairline/pkg/ports"
)

// Default capture mode when the properties leave it unset.
const (
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultFrameRate = 30
)

// 75% color bars in Y, Cb, Cr.
var colors = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// Source implements ports.VideoSource.
type Source struct {
	props  ports.VideoProperties
	base   *image.YCbCr
	random *rand.Rand
	tick   *time.Ticker
	read   int
}

// New creates a test source.
func New() *Source {
	return &Source{}
}

// Open prepares the test pattern for props.
func (s *Source) Open(props ports.VideoProperties) error {
	if props.Width == 0 {
		props.Width = DefaultWidth
	}
	if props.Height == 0 {
		props.Height = DefaultHeight
	}
	if props.FrameRate == 0 {
		props.FrameRate = DefaultFrameRate
	}
	if props.Width < 2 || props.Height < 1 || props.Width%2 != 0 {
		return fmt.Errorf("testsource: unsupported size %dx%d", props.Width, props.Height)
	}

	s.props = props
	s.base = pattern(props.Width, props.Height)
	s.random = rand.New(rand.NewSource(0))
	s.tick = time.NewTicker(time.Duration(float64(time.Second) / props.FrameRate))
	s.read = 0
	return nil
}

func pattern(width, height int) *image.YCbCr {
	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio422)
	barsEnd := height * 3 / 4
	gradationEnd := width * 5 / 7
	for y := 0; y < height; y++ {
		yi := img.YStride * y
		ci := img.CStride * y
		for x := 0; x < width; x++ {
			switch {
			case y < barsEnd:
				c := x * 7 / width
				img.Y[yi+x] = uint8(uint16(colors[c][0]) * 75 / 100)
				img.Cb[ci+x/2] = colors[c][1]
				img.Cr[ci+x/2] = colors[c][2]
			case x < gradationEnd:
				img.Y[yi+x] = uint8(x * 255 / gradationEnd)
				img.Cb[ci+x/2] = 128
				img.Cr[ci+x/2] = 128
			default:
				img.Cb[ci+x/2] = 128
				img.Cr[ci+x/2] = 128
			}
		}
	}
	return img
}

// Read waits for the next tick and returns a new frame.
func (s *Source) Read(ctx context.Context) (image.Image, error) {
	if s.tick == nil {
		return nil, fmt.Errorf("testsource: not opened")
	}
	if s.props.NumFrames > 0 && s.read >= s.props.NumFrames {
		return nil, io.EOF
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.tick.C:
	}

	img := &image.YCbCr{
		Y:              append([]byte(nil), s.base.Y...),
		Cb:             append([]byte(nil), s.base.Cb...),
		Cr:             append([]byte(nil), s.base.Cr...),
		YStride:        s.base.YStride,
		CStride:        s.base.CStride,
		SubsampleRatio: s.base.SubsampleRatio,
		Rect:           s.base.Rect,
	}
	barsEnd := s.props.Height * 3 / 4
	gradationEnd := s.props.Width * 5 / 7
	for y := barsEnd; y < s.props.Height; y++ {
		yi := img.YStride * y
		for x := gradationEnd; x < s.props.Width; x++ {
			img.Y[yi+x] = uint8(s.random.Int31n(2) * 255)
		}
	}

	s.read++
	return img, nil
}

// Close stops the pacing ticker.
func (s *Source) Close() error {
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
	return nil
}

var _ ports.VideoSource = (*Source)(nil)
