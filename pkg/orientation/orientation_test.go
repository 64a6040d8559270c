package orientation

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMethods() []Method {
	ms := make([]Method, 0, numMethods)
	for m := Identity; m < numMethods; m++ {
		ms = append(ms, m)
	}
	return ms
}

func TestRotationsAreMutualInverses(t *testing.T) {
	for _, s := range allMethods() {
		v := s.External()
		assert.Equal(t, v, Next(ActionRotateClockwise, Next(ActionRotateCounterClockwise, v)), "state %s", s)
		assert.Equal(t, v, Next(ActionRotateCounterClockwise, Next(ActionRotateClockwise, v)), "state %s", s)
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	for _, s := range allMethods() {
		v := s.External()
		assert.Equal(t, v, Next(ActionFlipHorizontal, Next(ActionFlipHorizontal, v)), "state %s", s)
		assert.Equal(t, v, Next(ActionFlipVertical, Next(ActionFlipVertical, v)), "state %s", s)
	}
}

func TestFourClockwiseRotationsReturnHome(t *testing.T) {
	for _, s := range allMethods() {
		v := s.External()
		for i := 0; i < 4; i++ {
			v = Next(ActionRotateClockwise, v)
		}
		assert.Equal(t, s.External(), v)
	}
}

func TestFlipsComposeToHalfTurn(t *testing.T) {
	for _, s := range allMethods() {
		v := s.External()
		assert.Equal(t,
			Next(ActionRotateClockwise, Next(ActionRotateClockwise, v)),
			Next(ActionFlipHorizontal, Next(ActionFlipVertical, v)),
			"state %s", s)
	}
}

func TestTablesArePermutations(t *testing.T) {
	for a := ActionFlipHorizontal; a < numActions; a++ {
		seen := make(map[Method]bool)
		for _, m := range Table(a) {
			seen[m] = true
		}
		assert.Len(t, seen, numMethods, "action %s", a)
	}
}

func TestTablesMatchPropertyEncoding(t *testing.T) {
	// Expected values of the flip element's method property, indexed by the
	// current value.
	want := map[Action][numMethods]Method{
		ActionFlipHorizontal:         {4, 6, 5, 7, 0, 2, 1, 3},
		ActionFlipVertical:           {5, 7, 4, 6, 2, 0, 3, 1},
		ActionRotateClockwise:        {1, 2, 3, 0, 7, 6, 4, 5},
		ActionRotateCounterClockwise: {3, 0, 1, 2, 6, 7, 5, 4},
	}
	for a, table := range want {
		assert.Equal(t, table, Table(a), "action %s", a)
	}
}

func TestOutOfRangeNormalizesToIdentity(t *testing.T) {
	for _, v := range []int{-1, 8, 9, 100} {
		for a := ActionFlipHorizontal; a < numActions; a++ {
			assert.Equal(t, 0, Next(a, v), "action %s from %d", a, v)
		}
		assert.Equal(t, Identity, FromExternal(v))
	}
}

func TestActionSequence(t *testing.T) {
	state := Identity.External()
	var got []int
	for _, a := range []Action{ActionRotateClockwise, ActionFlipHorizontal, ActionRotateCounterClockwise} {
		state = Next(a, state)
		got = append(got, state)
	}
	assert.Equal(t, []int{1, 6, 5}, got)

	// The same sequence expressed as one group product.
	product := Compose(Compose(Rotate90CW, FlipHorizontal), Rotate90CCW)
	assert.Equal(t, FlipVertical, product)
}

func TestInverse(t *testing.T) {
	for _, m := range allMethods() {
		assert.Equal(t, Identity, Compose(m, Inverse(m)), "method %s", m)
	}
	assert.Equal(t, Rotate90CCW, Inverse(Rotate90CW))
	assert.Equal(t, UpperLeftDiagonal, Inverse(UpperLeftDiagonal))
}

func TestParseMethod(t *testing.T) {
	for _, m := range allMethods() {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMethod("sideways")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	// 2x1 image: red on the left, blue on the right.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, blue)

	t.Run("identity", func(t *testing.T) {
		assert.Same(t, src, Apply(src, Identity).(*image.NRGBA))
	})

	t.Run("horizontal flip", func(t *testing.T) {
		out := Apply(src, FlipHorizontal)
		assert.Equal(t, image.Pt(2, 1), out.Bounds().Size())
		assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(0, 0)))
	})

	t.Run("clockwise", func(t *testing.T) {
		out := Apply(src, Rotate90CW)
		require.Equal(t, image.Pt(1, 2), out.Bounds().Size())
		// Left edge moves to the top.
		assert.Equal(t, red, color.NRGBAModel.Convert(out.At(0, 0)))
		assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(0, 1)))
	})

	t.Run("counterclockwise", func(t *testing.T) {
		out := Apply(src, Rotate90CCW)
		require.Equal(t, image.Pt(1, 2), out.Bounds().Size())
		assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(0, 0)))
	})

	for _, m := range allMethods() {
		assert.Equal(t, SwapsAxes(m), Apply(src, m).Bounds().Dx() == 1, "method %s", m)
	}
}
