// Package colorfx implements the color presets of the coloreffects element
// and the invert toggle bound to the UI button.
package colorfx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Preset is a color effect. The numeric values match the integer encoding of
// the coloreffects element's "preset" property.
type Preset int

const (
	// None leaves colors untouched.
	None Preset = iota
	// Heat is a fake heat camera toning.
	Heat
	// Sepia is a sepia toning.
	Sepia
	// XRay inverts the picture and slightly shades it to blue.
	XRay
	// XPro is a cross processing toning.
	XPro
	// YellowBlue paints a yellow foreground on a blue background.
	YellowBlue

	numPresets = 6
)

// Invert is the preset the invert button toggles to.
const Invert = XRay

var presetNames = [numPresets]string{"none", "heat", "sepia", "xray", "xpro", "yellowblue"}

// String returns the short name of the preset.
func (p Preset) String() string {
	if !p.Valid() {
		return fmt.Sprintf("preset(%d)", int(p))
	}
	return presetNames[p]
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p >= None && p < numPresets
}

// External returns the property encoding of p.
func (p Preset) External() int {
	return int(p)
}

// FromExternal converts a property value into a Preset. Unknown values are
// normalized to None.
func FromExternal(v int) Preset {
	p := Preset(v)
	if !p.Valid() {
		return None
	}
	return p
}

// ParsePreset parses a preset name as returned by String.
func ParsePreset(s string) (Preset, error) {
	for i, name := range presetNames {
		if name == s {
			return Preset(i), nil
		}
	}
	return None, fmt.Errorf("colorfx: unknown preset %q", s)
}

// Toggle returns the next preset value of the invert button: None becomes
// Invert and every other value becomes None.
func Toggle(current int) int {
	if current == None.External() {
		return Invert.External()
	}
	return None.External()
}

// Apply renders img with preset p. None and unknown presets return img
// unchanged.
func (p Preset) Apply(img image.Image) image.Image {
	var fn func(color.NRGBA) color.NRGBA
	switch p {
	case Heat:
		fn = heat
	case Sepia:
		fn = sepia
	case XRay:
		fn = xray
	case XPro:
		fn = xpro
	case YellowBlue:
		fn = yellowBlue
	default:
		return img
	}
	return imaging.AdjustFunc(img, fn)
}

// luma returns the BT.601 luma of c.
func luma(c color.NRGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// heat maps luma onto a blue, green, yellow, red ramp.
func heat(c color.NRGBA) color.NRGBA {
	y := luma(c)
	var r, g, b int
	switch {
	case y < 64:
		b = 128 + 2*y
	case y < 128:
		g = 4 * (y - 64)
		b = 255 - 4*(y-64)
	case y < 192:
		r = 4 * (y - 128)
		g = 255
	default:
		r = 255
		g = 255 - 4*(y-192)
	}
	return color.NRGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: c.A}
}

func sepia(c color.NRGBA) color.NRGBA {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return color.NRGBA{
		R: clamp((393*r + 769*g + 189*b) / 1000),
		G: clamp((349*r + 686*g + 168*b) / 1000),
		B: clamp((272*r + 534*g + 131*b) / 1000),
		A: c.A,
	}
}

func xray(c color.NRGBA) color.NRGBA {
	y := 255 - luma(c)
	return color.NRGBA{
		R: clamp(y * 7 / 8),
		G: clamp(y * 15 / 16),
		B: clamp(y + 24),
		A: c.A,
	}
}

// xpro applies an S-curve to red and green and lifts the blue shadows.
func xpro(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: sCurve(c.R),
		G: sCurve(c.G),
		B: clamp(32 + int(c.B)*3/4),
		A: c.A,
	}
}

func sCurve(v uint8) uint8 {
	x := int(v) - 128
	return clamp(128 + x + x*(128-abs(x))/128)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func yellowBlue(c color.NRGBA) color.NRGBA {
	y := luma(c)
	if y >= 128 {
		return color.NRGBA{R: clamp(y), G: clamp(y), B: 0, A: c.A}
	}
	return color.NRGBA{R: 0, G: 0, B: clamp(128 + y), A: c.A}
}
