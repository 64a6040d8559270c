package colorfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleIsInvolution(t *testing.T) {
	for _, c := range []int{0, 3} {
		assert.Equal(t, c, Toggle(Toggle(c)))
	}
	assert.Equal(t, 3, Toggle(0))
	assert.Equal(t, 0, Toggle(3))
}

func TestToggleNormalizes(t *testing.T) {
	for _, c := range []int{-1, 1, 2, 4, 5, 6, 42} {
		assert.Equal(t, 0, Toggle(c), "current %d", c)
	}
}

func TestFromExternal(t *testing.T) {
	assert.Equal(t, XRay, FromExternal(3))
	assert.Equal(t, YellowBlue, FromExternal(5))
	assert.Equal(t, None, FromExternal(6))
	assert.Equal(t, None, FromExternal(-3))
}

func TestParsePreset(t *testing.T) {
	for p := None; p < numPresets; p++ {
		got, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePreset("vivid")
	assert.Error(t, err)
}

func TestApplyNoneReturnsInput(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, img, None.Apply(img).(*image.NRGBA))
	assert.Same(t, img, Preset(9).Apply(img).(*image.NRGBA))
}

func TestXRayInverts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := XRay.Apply(img)
	dark := color.NRGBAModel.Convert(out.At(0, 0)).(color.NRGBA)
	light := color.NRGBAModel.Convert(out.At(1, 0)).(color.NRGBA)

	assert.Greater(t, int(dark.B), 200, "black becomes bright")
	assert.Less(t, int(light.R), 10, "white becomes dark")
	assert.GreaterOrEqual(t, dark.B, dark.R, "shaded to blue")
	assert.Equal(t, uint8(255), dark.A)
}

func TestPresetsKeepBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 3))
	for p := None; p < numPresets; p++ {
		assert.Equal(t, img.Bounds().Size(), p.Apply(img).Bounds().Size(), "preset %s", p)
	}
}

func TestSepiaIsWarm(t *testing.T) {
	c := sepia(color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.G, c.B)
}

func TestYellowBlueSplitsOnLuma(t *testing.T) {
	bright := yellowBlue(color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	assert.Zero(t, bright.B)
	assert.NotZero(t, bright.R)

	dark := yellowBlue(color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	assert.Zero(t, dark.R)
	assert.NotZero(t, dark.B)
}
