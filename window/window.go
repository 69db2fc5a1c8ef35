// SPDX-License-Identifier: EPL-2.0

// Package window cuts a signal into overlapping, windowed blocks.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audbus/ring"
	"github.com/ik5/audbus/signal"
)

// Hann returns n symmetric Hann coefficients. Panics if n < 1.
func Hann(n int) []float64 {
	mustLength(n)

	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return out
}

// Rectangle returns n coefficients of 1. Panics if n < 1.
func Rectangle(n int) []float64 {
	mustLength(n)

	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func mustLength(n int) {
	if n < 1 {
		panic("window: length must be at least 1")
	}
}

// Windower pulls a signal through a ring buffer of len(coeffs) samples and
// yields the buffer multiplied by coeffs, advancing hop samples per block.
type Windower struct {
	sig     signal.Signal[float64]
	coeffs  []float64
	rb      *ring.Bounded[float64]
	block   []float64
	discard []float64
}

// NewWindower creates a Windower over sig. Blocks overlap by
// len(coeffs)-hop samples.
//
// Panics if coeffs is empty or hop is outside 1..len(coeffs).
func NewWindower(sig signal.Signal[float64], coeffs []float64, hop int) *Windower {
	if len(coeffs) == 0 {
		panic("window: empty coefficients")
	}
	if hop < 1 || hop > len(coeffs) {
		panic("window: hop must be in 1..len(coeffs)")
	}
	return &Windower{
		sig:     sig,
		coeffs:  coeffs,
		rb:      ring.NewBoundedSize[float64](len(coeffs)),
		block:   make([]float64, len(coeffs)),
		discard: make([]float64, hop),
	}
}

// Len returns the number of samples in a block.
func (w *Windower) Len() int { return len(w.coeffs) }

// Hop returns the number of samples each block advances.
func (w *Windower) Hop() int { return len(w.discard) }

// Next returns the next windowed block. The returned slice is overwritten by
// the following call.
func (w *Windower) Next() []float64 {
	for !w.rb.IsFull() {
		w.rb.Push(w.sig.Next())
	}

	front, back := w.rb.Slices()
	n := copy(w.block, front)
	copy(w.block[n:], back)
	vecmath.MulBlockInPlace(w.block, w.coeffs)

	w.rb.Read(w.discard)
	return w.block
}

// IsExhausted reports whether the signal is exhausted. Samples still in the
// ring buffer have all appeared in an earlier block.
func (w *Windower) IsExhausted() bool {
	return w.sig.IsExhausted()
}
