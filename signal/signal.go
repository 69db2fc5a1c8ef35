// SPDX-License-Identifier: EPL-2.0

package signal

import "iter"

// Signal is a pull-based producer of frames.
//
// Next must always return a frame. Once a signal is exhausted it keeps
// returning a well defined value, usually the zero frame.
type Signal[F any] interface {
	Next() F
	IsExhausted() bool
}

type sliceSignal[F any] struct {
	frames []F
	pos    int
}

// FromSlice yields the frames of s in order, then zero frames.
// The slice is not copied.
func FromSlice[F any](s []F) Signal[F] {
	return &sliceSignal[F]{frames: s}
}

func (s *sliceSignal[F]) Next() F {
	if s.pos >= len(s.frames) {
		var zero F
		return zero
	}
	f := s.frames[s.pos]
	s.pos++
	return f
}

func (s *sliceSignal[F]) IsExhausted() bool {
	return s.pos >= len(s.frames)
}

type equilibrium[F any] struct{}

// Equilibrium yields zero frames forever.
func Equilibrium[F any]() Signal[F] {
	return equilibrium[F]{}
}

func (equilibrium[F]) Next() F {
	var zero F
	return zero
}

func (equilibrium[F]) IsExhausted() bool { return false }

// GenFunc adapts a function into an endless Signal.
type GenFunc[F any] func() F

// Gen yields the result of calling fn, forever.
func Gen[F any](fn func() F) Signal[F] {
	return GenFunc[F](fn)
}

func (g GenFunc[F]) Next() F           { return g() }
func (g GenFunc[F]) IsExhausted() bool { return false }

// Take pulls n frames from sig into a new slice, whether or not sig is
// exhausted on the way.
func Take[F any](sig Signal[F], n int) []F {
	out := make([]F, n)
	for i := range out {
		out[i] = sig.Next()
	}
	return out
}

// UntilExhausted yields frames from sig until it reports exhaustion.
// An endless signal makes this an endless loop; the consumer must break.
func UntilExhausted[F any](sig Signal[F]) iter.Seq[F] {
	return func(yield func(F) bool) {
		for !sig.IsExhausted() {
			if !yield(sig.Next()) {
				return
			}
		}
	}
}
