package pipeline

import (
	"image"
	"strings"
)

// Media types carried by buffers.
const (
	MediaRaw  = "video/x-raw"
	MediaJPEG = "image/jpeg"
	MediaH264 = "video/x-h264"
)

// Pixel formats of raw video buffers.
const (
	FormatYCbCr = "YCbCr"
	FormatNRGBA = "NRGBA"
	FormatRGBA  = "RGBA"
)

// Caps describes what an element pad accepts or produces. An empty Formats
// list means any format of the media type.
type Caps struct {
	Media   string
	Formats []string
}

// RawCaps returns raw video caps restricted to formats.
func RawCaps(formats ...string) Caps {
	return Caps{Media: MediaRaw, Formats: formats}
}

// IsEmpty reports whether c carries no media, as on the missing pad of a
// source or a sink.
func (c Caps) IsEmpty() bool {
	return c.Media == ""
}

// Intersect returns the caps common to c and o and whether there are any.
func (c Caps) Intersect(o Caps) (Caps, bool) {
	if c.IsEmpty() || o.IsEmpty() || c.Media != o.Media {
		return Caps{}, false
	}
	switch {
	case len(c.Formats) == 0:
		return o, true
	case len(o.Formats) == 0:
		return c, true
	}
	var common []string
	for _, f := range c.Formats {
		for _, g := range o.Formats {
			if f == g {
				common = append(common, f)
				break
			}
		}
	}
	if len(common) == 0 {
		return Caps{}, false
	}
	return Caps{Media: c.Media, Formats: common}, true
}

// String renders c the way caps are usually written,
// e.g. "video/x-raw,format={RGBA,NRGBA}".
func (c Caps) String() string {
	if c.IsEmpty() {
		return "EMPTY"
	}
	switch len(c.Formats) {
	case 0:
		return c.Media
	case 1:
		return c.Media + ",format=" + c.Formats[0]
	default:
		return c.Media + ",format={" + strings.Join(c.Formats, ",") + "}"
	}
}

// FormatOf returns the raw pixel format of img, or "" if it has none of the
// known formats.
func FormatOf(img image.Image) string {
	switch img.(type) {
	case *image.YCbCr:
		return FormatYCbCr
	case *image.NRGBA:
		return FormatNRGBA
	case *image.RGBA:
		return FormatRGBA
	default:
		return ""
	}
}
