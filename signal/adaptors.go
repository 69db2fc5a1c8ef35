// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/ik5/audbus/frame"

type mapSignal[F, G any] struct {
	sig Signal[F]
	fn  func(F) G
}

// Map applies fn to every frame of sig.
func Map[F, G any](sig Signal[F], fn func(F) G) Signal[G] {
	return &mapSignal[F, G]{sig: sig, fn: fn}
}

func (m *mapSignal[F, G]) Next() G           { return m.fn(m.sig.Next()) }
func (m *mapSignal[F, G]) IsExhausted() bool { return m.sig.IsExhausted() }

// Mono averages the channels of every frame of sig.
func Mono[F frame.Frame](sig Signal[F]) Signal[frame.Mono] {
	return Map(sig, frame.ToMono[F])
}

type delaySignal[F any] struct {
	sig    Signal[F]
	frames int
}

// Delay yields n zero frames before the frames of sig.
func Delay[F any](sig Signal[F], n int) Signal[F] {
	return &delaySignal[F]{sig: sig, frames: n}
}

func (d *delaySignal[F]) Next() F {
	if d.frames > 0 {
		d.frames--
		var zero F
		return zero
	}
	return d.sig.Next()
}

func (d *delaySignal[F]) IsExhausted() bool {
	return d.frames == 0 && d.sig.IsExhausted()
}

type inspectSignal[F any] struct {
	sig Signal[F]
	fn  func(F)
}

// Inspect calls fn with every frame of sig before passing it on.
func Inspect[F any](sig Signal[F], fn func(F)) Signal[F] {
	return &inspectSignal[F]{sig: sig, fn: fn}
}

func (s *inspectSignal[F]) Next() F {
	f := s.sig.Next()
	s.fn(f)
	return f
}

func (s *inspectSignal[F]) IsExhausted() bool { return s.sig.IsExhausted() }
