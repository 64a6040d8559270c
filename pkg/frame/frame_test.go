package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYUYV(t *testing.T) {
	// 2x2 picture, two macropixels.
	raw := []byte{
		10, 100, 20, 200,
		30, 110, 40, 210,
	}
	dec, err := NewDecoder(FormatYUYV)
	require.NoError(t, err)

	img, err := dec.Decode(raw, 2, 2)
	require.NoError(t, err)

	ycbcr, ok := img.(*image.YCbCr)
	require.True(t, ok)
	assert.Equal(t, []byte{10, 20, 30, 40}, ycbcr.Y)
	assert.Equal(t, []byte{100, 110}, ycbcr.Cb)
	assert.Equal(t, []byte{200, 210}, ycbcr.Cr)
	assert.Equal(t, image.YCbCrSubsampleRatio422, ycbcr.SubsampleRatio)

	raw[0] = 99
	assert.Equal(t, uint8(10), ycbcr.Y[0], "decoded image must not alias the capture buffer")
}

func TestDecodeYUYVShortFrame(t *testing.T) {
	dec, err := NewDecoder(FormatYUYV)
	require.NoError(t, err)

	_, err = dec.Decode(make([]byte, 6), 2, 2)
	assert.Error(t, err)
}

func TestDecodeYUYVInvalidSize(t *testing.T) {
	dec, err := NewDecoder(FormatYUYV)
	require.NoError(t, err)

	for _, size := range [][2]int{{3, 3}, {3, 2}, {0, 2}, {-2, 2}, {2, 0}} {
		assert.NotPanics(t, func() {
			_, err = dec.Decode(make([]byte, 64), size[0], size[1])
		})
		assert.Error(t, err, "size %dx%d", size[0], size[1])
	}
}

func TestDecodeMJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range src.Pix {
		src.Pix[i] = 0x80
	}
	src.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	dec, err := NewDecoder(FormatMJPEG)
	require.NoError(t, err)

	img, err := dec.Decode(buf.Bytes(), 16, 8)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 8), img.Bounds().Size())
}

func TestNewDecoderUnsupported(t *testing.T) {
	_, err := NewDecoder("NV12")
	assert.Error(t, err)
}
