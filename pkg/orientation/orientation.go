// Package orientation implements the eight image orientations of the flip
// element and the transitions between them triggered by the UI buttons.
//
// The orientations form the dihedral group of order 8 (the symmetries of a
// square). Every orientation is represented by a 2x2 integer matrix acting on
// image coordinates with the y axis pointing up, and every button action is a
// group element composed on the left of the current orientation:
//
//	next = action * current
//
// The per-action lookup tables are derived from that composition when the
// package is initialized.
package orientation

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Method is one of the eight orientations. The numeric values match the
// integer encoding of the flip element's "method" property.
type Method int

const (
	// Identity leaves the image untouched.
	Identity Method = iota
	// Rotate90CW rotates clockwise by 90 degrees.
	Rotate90CW
	// Rotate180 rotates by 180 degrees.
	Rotate180
	// Rotate90CCW rotates counter-clockwise by 90 degrees.
	Rotate90CCW
	// FlipHorizontal mirrors across the vertical axis.
	FlipHorizontal
	// FlipVertical mirrors across the horizontal axis.
	FlipVertical
	// UpperLeftDiagonal mirrors across the upper-left/lower-right diagonal.
	UpperLeftDiagonal
	// UpperRightDiagonal mirrors across the upper-right/lower-left diagonal.
	UpperRightDiagonal

	numMethods = 8
)

var methodNames = [numMethods]string{
	"none",
	"clockwise",
	"rotate-180",
	"counterclockwise",
	"horizontal-flip",
	"vertical-flip",
	"upper-left-diagonal",
	"upper-right-diagonal",
}

// String returns the short name of the method.
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodNames[m]
}

// Valid reports whether m is one of the eight orientations.
func (m Method) Valid() bool {
	return m >= Identity && m < numMethods
}

// External returns the property encoding of m.
func (m Method) External() int {
	return int(m)
}

// FromExternal converts a property value into a Method. Values outside 0..7
// are normalized to Identity.
func FromExternal(v int) Method {
	m := Method(v)
	if !m.Valid() {
		return Identity
	}
	return m
}

// ParseMethod parses a method name as returned by String.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), nil
		}
	}
	return Identity, fmt.Errorf("orientation: unknown method %q", s)
}

// Action is a button action applied to the current orientation.
type Action int

const (
	// ActionFlipHorizontal mirrors the current picture across the vertical axis.
	ActionFlipHorizontal Action = iota
	// ActionFlipVertical mirrors the current picture across the horizontal axis.
	ActionFlipVertical
	// ActionRotateClockwise rotates the current picture by +90 degrees.
	ActionRotateClockwise
	// ActionRotateCounterClockwise rotates the current picture by -90 degrees.
	ActionRotateCounterClockwise

	numActions = 4
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionFlipHorizontal:
		return "flip-horizontal"
	case ActionFlipVertical:
		return "flip-vertical"
	case ActionRotateClockwise:
		return "rotate-clockwise"
	case ActionRotateCounterClockwise:
		return "rotate-counter-clockwise"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// matrix is a 2x2 integer matrix {a, b, c, d} = [[a b] [c d]].
type matrix [4]int8

func (p matrix) mul(q matrix) matrix {
	return matrix{
		p[0]*q[0] + p[1]*q[2], p[0]*q[1] + p[1]*q[3],
		p[2]*q[0] + p[3]*q[2], p[2]*q[1] + p[3]*q[3],
	}
}

var matrices = [numMethods]matrix{
	Identity:           {1, 0, 0, 1},
	Rotate90CW:         {0, 1, -1, 0},
	Rotate180:          {-1, 0, 0, -1},
	Rotate90CCW:        {0, -1, 1, 0},
	FlipHorizontal:     {-1, 0, 0, 1},
	FlipVertical:       {1, 0, 0, -1},
	UpperLeftDiagonal:  {0, -1, -1, 0},
	UpperRightDiagonal: {0, 1, 1, 0},
}

// actionElements maps every action onto the group element it composes.
var actionElements = [numActions]Method{
	ActionFlipHorizontal:         FlipHorizontal,
	ActionFlipVertical:           FlipVertical,
	ActionRotateClockwise:        Rotate90CW,
	ActionRotateCounterClockwise: Rotate90CCW,
}

// tables[a][m] is the orientation reached from m by action a.
var tables = buildTables()

func buildTables() [numActions][numMethods]Method {
	var t [numActions][numMethods]Method
	for a, elem := range actionElements {
		for m := Identity; m < numMethods; m++ {
			t[a][m] = lookup(matrices[elem].mul(matrices[m]))
		}
	}
	return t
}

func lookup(x matrix) Method {
	for m, mm := range matrices {
		if mm == x {
			return Method(m)
		}
	}
	// The eight matrices are closed under multiplication.
	panic(fmt.Sprintf("orientation: matrix %v is not a group element", x))
}

// Compose returns the orientation obtained by applying first and then second.
func Compose(first, second Method) Method {
	return lookup(matrices[FromExternal(int(second))].mul(matrices[FromExternal(int(first))]))
}

// Inverse returns the orientation that undoes m.
func Inverse(m Method) Method {
	m = FromExternal(int(m))
	for n := Identity; n < numMethods; n++ {
		if Compose(m, n) == Identity {
			return n
		}
	}
	return Identity
}

// Transition returns the orientation reached from current by action.
// An invalid current orientation resets to Identity.
func Transition(action Action, current Method) Method {
	if !current.Valid() {
		return Identity
	}
	if action < 0 || action >= numActions {
		return current
	}
	return tables[action][current]
}

// Next is Transition on the property encoding. It is total over int: any
// value outside 0..7 yields 0.
func Next(action Action, current int) int {
	return Transition(action, Method(current)).External()
}

// Table returns a copy of the lookup table of action, indexed by the current
// method.
func Table(action Action) [numMethods]Method {
	if action < 0 || action >= numActions {
		return [numMethods]Method{}
	}
	return tables[action]
}

// Apply renders img in orientation m. Identity and invalid methods return img
// unchanged.
func Apply(img image.Image, m Method) image.Image {
	switch m {
	case Rotate90CW:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate90CCW:
		return imaging.Rotate90(img)
	case FlipHorizontal:
		return imaging.FlipH(img)
	case FlipVertical:
		return imaging.FlipV(img)
	case UpperLeftDiagonal:
		return imaging.Transpose(img)
	case UpperRightDiagonal:
		return imaging.Transverse(img)
	default:
		return img
	}
}

// SwapsAxes reports whether m exchanges the width and height of a frame.
func SwapsAxes(m Method) bool {
	return matrices[FromExternal(int(m))][0] == 0
}
