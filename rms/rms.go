// SPDX-License-Identifier: EPL-2.0

// Package rms computes a sliding-window root mean square per channel.
//
// The window is a ring.Fixed of squared frames. Every new frame replaces the
// oldest square and the running sum is updated by the difference, so each
// step costs one frame of work no matter how long the window is.
//
//	meter := rms.New[frame.Stereo](1024)
//	for f := range signal.UntilExhausted(sig) {
//	    level := meter.Next(f)
//	    ...
//	}
package rms

import (
	"math"

	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/ring"
)

// Rms tracks the RMS of the most recent WindowFrames() frames.
// The window starts out full of silence.
type Rms[F frame.Frame] struct {
	window *ring.Fixed[F]
	sum    F
}

// New creates an Rms over a window of n frames. Panics if n < 1.
func New[F frame.Frame](n int) *Rms[F] {
	if n < 1 {
		panic("rms: window must hold at least one frame")
	}
	return &Rms[F]{window: ring.FixedFrom(ring.Alloc[F](n))}
}

// WindowFrames returns the window length.
func (r *Rms[F]) WindowFrames() int {
	return r.window.Len()
}

// Reset fills the window with silence.
func (r *Rms[F]) Reset() {
	var zero F
	r.window.Fill(zero)
	r.sum = zero
}

// NextSquared adds f to the window and returns the mean square per channel.
func (r *Rms[F]) NextSquared(f F) F {
	square := frame.Map(f, func(x float32) float32 { return x * x })
	removed := r.window.Push(square)
	r.sum = frame.Add(r.sum, square)
	// Rounding can leave the sum slightly below zero once loud frames leave
	// the window.
	r.sum = frame.Zip(r.sum, removed, func(s, old float32) float32 {
		return max(s-old, 0)
	})
	return r.meanSquare()
}

// Next adds f to the window and returns the RMS per channel.
func (r *Rms[F]) Next(f F) F {
	return frame.Map(r.NextSquared(f), sqrt)
}

// Current returns the RMS of the window without changing it.
func (r *Rms[F]) Current() F {
	return frame.Map(r.meanSquare(), sqrt)
}

func (r *Rms[F]) meanSquare() F {
	return frame.Scale(r.sum, 1/float32(r.window.Len()))
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
