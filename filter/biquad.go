// SPDX-License-Identifier: EPL-2.0

// Package filter implements biquad (second-order IIR) filters over frames.
//
// A Biquad keeps one Direct Form II Transposed state per channel and filters
// a frame at a time, so it drops into a signal chain with signal.Map:
//
//	lp := filter.NewBiquad[frame.Stereo](filter.Lowpass(1000, filter.DefaultQ, 44100))
//	smooth := signal.Map(sig, lp.Apply)
package filter

import (
	"math"

	"github.com/ik5/audbus/frame"
)

// DefaultQ is the Butterworth quality factor, 1/sqrt(2).
const DefaultQ = 1 / math.Sqrt2

// maxChannels is the widest frame.Frame.
const maxChannels = 8

// Coefficients of one biquad section, normalized so that a0 is 1.
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Lowpass designs a lowpass section at freq Hz.
//
// A freq outside (0, sampleRate/2) or a non-positive sampleRate yields zero
// coefficients, which silence the output. A non-positive q selects DefaultQ.
func Lowpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}
	cw, alpha := math.Cos(w0), math.Sin(w0)/(2*normalizedQ(q))

	b1 := 1 - cw
	return normalize(b1/2, b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

// Highpass designs a highpass section at freq Hz. Out of range arguments are
// handled as in Lowpass.
func Highpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}
	cw, alpha := math.Cos(w0), math.Sin(w0)/(2*normalizedQ(q))

	b1 := -(1 + cw)
	return normalize(-b1/2, b1, -b1/2, 1+alpha, -2*cw, 1-alpha)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, false
	}
	if !(freq > 0) || freq >= sampleRate/2 {
		return 0, false
	}
	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if !(q > 0) || math.IsInf(q, 0) {
		return DefaultQ
	}
	return q
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}

// Biquad filters frames of type F with one section.
type Biquad[F frame.Frame] struct {
	Coefficients

	d0, d1 [maxChannels]float64
}

// NewBiquad creates a Biquad with silent state.
func NewBiquad[F frame.Frame](c Coefficients) *Biquad[F] {
	return &Biquad[F]{Coefficients: c}
}

// Apply filters one frame.
func (b *Biquad[F]) Apply(f F) F {
	for i := 0; i < len(f); i++ {
		x := float64(f[i])
		y := b.B0*x + b.d0[i]
		b.d0[i] = b.B1*x - b.A1*y + b.d1[i]
		b.d1[i] = b.B2*x - b.A2*y
		f[i] = float32(y)
	}
	return f
}

// Reset clears the filter state. The coefficients are kept.
func (b *Biquad[F]) Reset() {
	b.d0 = [maxChannels]float64{}
	b.d1 = [maxChannels]float64{}
}
