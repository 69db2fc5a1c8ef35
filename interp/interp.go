// SPDX-License-Identifier: EPL-2.0

// Package interp provides the frame interpolators used for sample rate
// conversion.
//
// An Interpolator is fed source frames one at a time with NextSource and asked
// for values between its two current frames with Interpolate, where x is the
// fractional position in [0, 1).
package interp

import (
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/ring"
)

// Interpolator estimates frames between consecutive source frames.
type Interpolator[F frame.Frame] interface {
	// Interpolate returns the frame at fractional position x between the
	// current pair of source frames.
	Interpolate(x float64) F
	// NextSource advances the interpolator by one source frame.
	NextSource(f F)
	// Reset drops all history.
	Reset()
}

// Floor holds the most recent source frame.
type Floor[F frame.Frame] struct {
	left F
}

// NewFloor creates a Floor interpolator starting at left.
func NewFloor[F frame.Frame](left F) *Floor[F] {
	return &Floor[F]{left: left}
}

func (f *Floor[F]) Interpolate(float64) F { return f.left }
func (f *Floor[F]) NextSource(next F)     { f.left = next }
func (f *Floor[F]) Reset()                { f.left = *new(F) }

// Linear interpolates on a straight line between two frames.
type Linear[F frame.Frame] struct {
	left, right F
}

// NewLinear creates a Linear interpolator between left and right.
func NewLinear[F frame.Frame](left, right F) *Linear[F] {
	return &Linear[F]{left: left, right: right}
}

func (l *Linear[F]) Interpolate(x float64) F {
	return frame.Lerp(l.left, l.right, float32(x))
}

func (l *Linear[F]) NextSource(next F) {
	l.left = l.right
	l.right = next
}

func (l *Linear[F]) Reset() {
	var zero F
	l.left, l.right = zero, zero
}

// Cubic is a Catmull-Rom spline over the last four source frames.
//
// It interpolates between the second and third frame of its history, so its
// output runs one source frame behind Linear fed with the same frames.
type Cubic[F frame.Frame] struct {
	history *ring.Fixed[F]
}

// NewCubic creates a Cubic interpolator whose history is primed so that the
// first source period holds left and the next one runs from left to right.
func NewCubic[F frame.Frame](left, right F) *Cubic[F] {
	return &Cubic[F]{history: ring.NewFixed([]F{left, left, left, right})}
}

func (c *Cubic[F]) Interpolate(x float64) F {
	y0, y1, y2, y3 := c.history.Get(0), c.history.Get(1), c.history.Get(2), c.history.Get(3)
	var out F
	for i := 0; i < len(out); i++ {
		out[i] = CatmullRom(y0[i], y1[i], y2[i], y3[i], float32(x))
	}
	return out
}

func (c *Cubic[F]) NextSource(next F) {
	c.history.Push(next)
}

func (c *Cubic[F]) Reset() {
	c.history.Fill(*new(F))
}

// CatmullRom evaluates the Catmull-Rom spline through y0..y3 at x, the
// fractional position between y1 (x = 0) and y2 (x = 1).
func CatmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1
	return a0*x*x*x + a1*x*x + a2*x + a3
}
