// Package frame decodes raw capture buffers into images.
package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// Format names a capture pixel format.
type Format string

const (
	// FormatYUYV is packed 4:2:2 YUV, https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUYV Format = "YUYV"
	// FormatMJPEG is a stream of JPEG pictures, https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPEG"
)

// Decoder turns one capture buffer into an image. The returned image never
// aliases frame.
type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, error)
}

// DecoderFunc is a function adapter for Decoder.
type DecoderFunc func(frame []byte, width, height int) (image.Image, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(frame []byte, width, height int) (image.Image, error) {
	return f(frame, width, height)
}

// NewDecoder returns the decoder for f.
func NewDecoder(f Format) (Decoder, error) {
	switch f {
	case FormatYUYV:
		return DecoderFunc(decodeYUYV), nil
	case FormatMJPEG:
		return DecoderFunc(decodeMJPEG), nil
	default:
		return nil, fmt.Errorf("frame: %s is not supported", f)
	}
}

func decodeYUYV(frame []byte, width, height int) (image.Image, error) {
	// Each 4-byte YUYV group carries two horizontally adjacent pixels.
	if width <= 0 || height <= 0 || width%2 != 0 {
		return nil, fmt.Errorf("frame: invalid YUYV size %dx%d", width, height)
	}

	yi := width * height
	ci := yi / 2
	fi := yi + 2*ci

	if len(frame) < fi {
		return nil, fmt.Errorf("frame: length (%d) less than expected (%d)", len(frame), fi)
	}

	y := make([]byte, yi)
	cb := make([]byte, ci)
	cr := make([]byte, ci)

	fast := 0
	slow := 0
	for i := 0; i < fi; i += 4 {
		y[fast] = frame[i]
		cb[slow] = frame[i+1]
		y[fast+1] = frame[i+2]
		cr[slow] = frame[i+3]
		fast += 2
		slow++
	}

	return &image.YCbCr{
		Y:              y,
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}

func decodeMJPEG(frame []byte, width, height int) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(frame))
}
