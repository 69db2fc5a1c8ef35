// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"testing"

	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/interp"
)

func monoRamp(n int) []frame.Mono {
	out := make([]frame.Mono, n)
	for i := range out {
		out[i] = frame.Mono{float32(i)}
	}
	return out
}

func collectMono(sig Signal[frame.Mono]) []float32 {
	var out []float32
	for f := range UntilExhausted(sig) {
		out = append(out, f[0])
		if len(out) > 1000 {
			break
		}
	}
	return out
}

func assertFloats(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d frames %v, want %d frames %v", len(got), got, len(want), want)
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConverter_Identity(t *testing.T) {
	t.Parallel()

	src := FromSlice(monoRamp(5))
	a, b := src.Next(), src.Next()
	conv := FromHzToHz(src, interp.NewLinear(a, b), 44100, 44100)

	assertFloats(t, collectMono(conv), []float32{0, 1, 2, 3})
}

func TestConverter_Upsample(t *testing.T) {
	t.Parallel()

	src := FromSlice(monoRamp(4))
	a, b := src.Next(), src.Next()
	conv := ScaleSampleHz(src, interp.NewLinear(a, b), 2)

	assertFloats(t, collectMono(conv), []float32{0, 0.5, 1, 1.5, 2, 2.5})
}

func TestConverter_Downsample(t *testing.T) {
	t.Parallel()

	src := FromSlice(monoRamp(9))
	conv := FromHzToHz(src, interp.NewFloor(src.Next()), 16000, 8000)

	assertFloats(t, collectMono(conv), []float32{0, 2, 4, 6, 8})
}

func TestConverter_CubicLagsOneFrame(t *testing.T) {
	t.Parallel()

	src := FromSlice(monoRamp(6))
	a, b := src.Next(), src.Next()
	conv := ScalePlaybackHz(src, interp.NewCubic(a, b), 1)

	assertFloats(t, collectMono(conv), []float32{0, 0, 1, 2, 3})
}

func TestConverter_SetRate(t *testing.T) {
	t.Parallel()

	src := FromSlice(monoRamp(20))
	a, b := src.Next(), src.Next()
	conv := ScalePlaybackHz(src, interp.NewLinear(a, b), 1)

	if conv.Source() != src {
		t.Error("Source() does not return the wrapped signal")
	}

	got := []float32{conv.Next()[0], conv.Next()[0]}
	conv.SetSampleHzScale(2)
	got = append(got, conv.Next()[0], conv.Next()[0])
	conv.SetHzToHz(8000, 4000)
	got = append(got, conv.Next()[0], conv.Next()[0])
	conv.SetPlaybackHzScale(1)
	got = append(got, conv.Next()[0])

	// 0 and 1 at 1:1, then 2 and 2.5 at half speed, then 3 and 5 at double
	// speed, then 7 at 1:1.
	assertFloats(t, got, []float32{0, 1, 2, 2.5, 3, 5, 7})
}

func TestConverter_InvalidScalePanics(t *testing.T) {
	t.Parallel()

	lin := interp.NewLinear(frame.Mono{}, frame.Mono{})
	conv := ScalePlaybackHz(Equilibrium[frame.Mono](), lin, 1)

	tests := []struct {
		name string
		fn   func()
	}{
		{"zero playback scale", func() { ScalePlaybackHz(Equilibrium[frame.Mono](), lin, 0) }},
		{"negative sample scale", func() { ScaleSampleHz(Equilibrium[frame.Mono](), lin, -2) }},
		{"NaN scale", func() { ScalePlaybackHz(Equilibrium[frame.Mono](), lin, math.NaN()) }},
		{"zero target rate", func() { conv.SetHzToHz(44100, math.Inf(1)) }},
		{"zero sample scale setter", func() { conv.SetSampleHzScale(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func BenchmarkConverter_CubicStereo(b *testing.B) {
	conv := FromHzToHz(Equilibrium[frame.Stereo](),
		interp.NewCubic(frame.Stereo{}, frame.Stereo{}), 44100, 48000)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_ = conv.Next()
	}
}
