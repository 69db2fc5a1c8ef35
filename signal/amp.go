// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/interp"
)

type zipSignal[A, B, C any] struct {
	a  Signal[A]
	b  Signal[B]
	fn func(A, B) C
}

// ZipMap pulls one frame from each of a and b and combines them with fn.
// The result is exhausted as soon as either input is.
func ZipMap[A, B, C any](a Signal[A], b Signal[B], fn func(A, B) C) Signal[C] {
	return &zipSignal[A, B, C]{a: a, b: b, fn: fn}
}

func (z *zipSignal[A, B, C]) Next() C {
	return z.fn(z.a.Next(), z.b.Next())
}

func (z *zipSignal[A, B, C]) IsExhausted() bool {
	return z.a.IsExhausted() || z.b.IsExhausted()
}

// AddAmp sums a and b frame by frame.
func AddAmp[F frame.Frame](a, b Signal[F]) Signal[F] {
	return ZipMap(a, b, frame.Add[F])
}

// MulAmp multiplies a by b frame by frame, b acting as a per-channel gain.
func MulAmp[F frame.Frame](a, b Signal[F]) Signal[F] {
	return ZipMap(a, b, frame.Mul[F])
}

// ScaleAmp multiplies every channel of sig by amp.
func ScaleAmp[F frame.Frame](sig Signal[F], amp float32) Signal[F] {
	return Map(sig, func(f F) F { return frame.Scale(f, amp) })
}

// ScaleAmpPerChannel multiplies each channel of sig by the matching channel of
// amp.
func ScaleAmpPerChannel[F frame.Frame](sig Signal[F], amp F) Signal[F] {
	return Map(sig, func(f F) F { return frame.Mul(f, amp) })
}

// OffsetAmp adds offset to every channel of sig.
func OffsetAmp[F frame.Frame](sig Signal[F], offset float32) Signal[F] {
	return Map(sig, func(f F) F {
		return frame.Map(f, func(x float32) float32 { return x + offset })
	})
}

// OffsetAmpPerChannel adds the matching channel of offset to each channel of
// sig.
func OffsetAmpPerChannel[F frame.Frame](sig Signal[F], offset F) Signal[F] {
	return Map(sig, func(f F) F { return frame.Add(f, offset) })
}

// ClipAmp limits every sample of sig to [-thresh, thresh]. The sign of thresh
// is ignored.
func ClipAmp[F frame.Frame](sig Signal[F], thresh float32) Signal[F] {
	thresh = max(thresh, -thresh)
	return Map(sig, func(f F) F {
		return frame.Map(f, func(x float32) float32 { return min(max(x, -thresh), thresh) })
	})
}

// Broadcast turns a scalar signal, such as an oscillator, into frames with the
// value on every channel.
func Broadcast[F frame.Frame](sig Signal[float64]) Signal[F] {
	return Map(sig, func(v float64) F { return frame.Broadcast[F](float32(v)) })
}

type mulHz[F frame.Frame] struct {
	conv *Converter[F]
	mul  Signal[float64]
}

// MulHz plays sig back at a speed read from mul every frame: 2 doubles the
// pitch, 0.5 halves it. The result is exhausted when either sig or mul is.
//
// Panics on a frame where mul yields a value <= 0.
func MulHz[F frame.Frame](sig Signal[F], ip interp.Interpolator[F], mul Signal[float64]) Signal[F] {
	return &mulHz[F]{conv: ScalePlaybackHz(sig, ip, 1), mul: mul}
}

func (m *mulHz[F]) Next() F {
	m.conv.SetPlaybackHzScale(m.mul.Next())
	return m.conv.Next()
}

func (m *mulHz[F]) IsExhausted() bool {
	return m.conv.IsExhausted() || m.mul.IsExhausted()
}
