//go:build linux

package v4l2camera

import (
	"context"
	"fmt"
	"image"

	"github.com/blackjack/webcam"

	"github.com/user/hairline/pkg/frame"
	"github.com/user/hairline/pkg/ports"
)

// V4L2 FourCC codes, https://www.kernel.org/doc/html/latest/userspace-api/media/v4l/pixfmt.html
const (
	pixFmtYUYV  webcam.PixelFormat = 0x56595559
	pixFmtMJPEG webcam.PixelFormat = 0x47504A4D
)

// Preferred formats first.
var formats = []struct {
	pixel webcam.PixelFormat
	frame frame.Format
}{
	{pixFmtYUYV, frame.FormatYUYV},
	{pixFmtMJPEG, frame.FormatMJPEG},
}

const (
	waitTimeoutSeconds = 1
	maxWaitTimeouts    = 5
	maxEmptyFrameCount = 5
)

// Camera implements ports.VideoSource.
type Camera struct {
	cam     *webcam.Webcam
	decoder frame.Decoder
	width   int
	height  int
	buf     []byte
}

// New creates a camera.
func New() *Camera {
	return &Camera{}
}

// Open opens the device and starts streaming in the first supported format.
func (c *Camera) Open(props ports.VideoProperties) error {
	path := props.Device
	if path == "" {
		path = DefaultDevice
	}

	cam, err := webcam.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	supported := cam.GetSupportedFormats()
	for _, f := range formats {
		if _, ok := supported[f.pixel]; !ok {
			continue
		}
		decoder, err := frame.NewDecoder(f.frame)
		if err != nil {
			cam.Close()
			return err
		}
		_, w, h, err := cam.SetImageFormat(f.pixel, uint32(props.Width), uint32(props.Height))
		if err != nil {
			cam.Close()
			return fmt.Errorf("set %s format on %s: %w", f.frame, path, err)
		}
		if err := cam.StartStreaming(); err != nil {
			cam.Close()
			return fmt.Errorf("start streaming on %s: %w", path, err)
		}

		c.cam = cam
		c.decoder = decoder
		c.width = int(w)
		c.height = int(h)
		return nil
	}

	cam.Close()
	return fmt.Errorf("%w on %s", ErrNoFormat, path)
}

// Size returns the frame size negotiated with the device.
func (c *Camera) Size() (int, int) {
	return c.width, c.height
}

// Read waits for the next frame. The device memory is copied before
// decoding so images stay valid after Close.
func (c *Camera) Read(ctx context.Context) (image.Image, error) {
	if c.cam == nil {
		return nil, fmt.Errorf("v4l2camera: not opened")
	}

	timeouts, empty := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := c.cam.WaitForFrame(waitTimeoutSeconds)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			timeouts++
			if timeouts >= maxWaitTimeouts {
				return nil, ErrReadTimeout
			}
			continue
		default:
			return nil, err
		}

		b, err := c.cam.ReadFrame()
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			empty++
			if empty >= maxEmptyFrameCount {
				return nil, ErrEmptyFrame
			}
			continue
		}

		if len(b) > len(c.buf) {
			c.buf = make([]byte, len(b))
		}
		n := copy(c.buf, b)
		return c.decoder.Decode(c.buf[:n], c.width, c.height)
	}
}

// Close stops streaming and closes the device.
func (c *Camera) Close() error {
	if c.cam == nil {
		return nil
	}
	c.cam.StopStreaming()
	err := c.cam.Close()
	c.cam = nil
	return err
}

var _ ports.VideoSource = (*Camera)(nil)
