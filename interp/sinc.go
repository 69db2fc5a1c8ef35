// SPDX-License-Identifier: EPL-2.0

package interp

import (
	"math"

	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/ring"
)

// Sinc is a Hann-windowed sinc interpolator.
//
// Its history holds 2*depth frames. Each output sums up to depth frames on
// either side of the interpolated position. Until depth frames have been fed
// in, only the frames seen so far contribute.
type Sinc[F frame.Frame] struct {
	frames *ring.Fixed[F]
	idx    int
}

// NewSinc creates a Sinc interpolator over history, whose length sets the
// filter depth to history.Len()/2. The history should start out silent.
//
// Panics if the length of history is odd.
func NewSinc[F frame.Frame](history *ring.Fixed[F]) *Sinc[F] {
	if history.Len()%2 != 0 {
		panic("interp: sinc history length must be even")
	}
	return &Sinc[F]{frames: history}
}

func (s *Sinc[F]) depth() int {
	return s.frames.Len() / 2
}

func (s *Sinc[F]) Interpolate(x float64) F {
	depth := s.depth()
	nl, nr := s.idx, s.idx+1

	maxDepth := depth
	switch {
	case nl+depth >= s.frames.Len():
		maxDepth = s.frames.Len() - depth
	case nr < depth:
		maxDepth = nr
	}

	var out F
	for n := range maxDepth {
		out = addWeighted(out, s.frames.Get(nl-n), sincWeight(x+float64(n), depth))
		out = addWeighted(out, s.frames.Get(nr+n), sincWeight(1-x+float64(n), depth))
	}
	return out
}

func (s *Sinc[F]) NextSource(next F) {
	s.frames.Push(next)
	if s.idx < s.depth() {
		s.idx++
	}
}

func (s *Sinc[F]) Reset() {
	s.frames.Fill(*new(F))
	s.idx = 0
}

// sincWeight is sinc(phase) under a Hann window spanning depth frames.
func sincWeight(phase float64, depth int) float64 {
	a := math.Pi * phase
	sinc := 1.0
	if a != 0 {
		sinc = math.Sin(a) / a
	}
	return sinc * (0.5 + 0.5*math.Cos(a/float64(depth)))
}

func addWeighted[F frame.Frame](acc, f F, w float64) F {
	for i := 0; i < len(acc); i++ {
		acc[i] += float32(w * float64(f[i]))
	}
	return acc
}
