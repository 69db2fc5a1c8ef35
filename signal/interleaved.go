// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"iter"

	"github.com/ik5/audbus/frame"
)

type interleavedSignal[F frame.Frame] struct {
	samples []float32
	pos     int
}

// FromInterleavedSamples yields the frames stored interleaved in samples,
// then zero frames. Trailing samples that do not fill a whole frame are
// ignored. The slice is not copied.
func FromInterleavedSamples[F frame.Frame](samples []float32) Signal[F] {
	return &interleavedSignal[F]{samples: samples}
}

func (s *interleavedSignal[F]) Next() F {
	if s.IsExhausted() {
		var zero F
		return zero
	}
	f := frame.FromInterleaved[F](s.samples[s.pos:])
	s.pos += len(f)
	return f
}

func (s *interleavedSignal[F]) IsExhausted() bool {
	return len(s.samples)-s.pos < frame.Channels[F]()
}

// IntoInterleavedSamples yields the samples of every frame of sig, channel by
// channel, until sig is exhausted.
func IntoInterleavedSamples[F frame.Frame](sig Signal[F]) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for f := range UntilExhausted(sig) {
			for i := 0; i < len(f); i++ {
				if !yield(f[i]) {
					return
				}
			}
		}
	}
}
