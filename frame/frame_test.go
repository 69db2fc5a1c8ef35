// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"math"
	"testing"
)

func TestChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"mono", Channels[Mono](), 1},
		{"stereo", Channels[Stereo](), 2},
		{"quad", Channels[Quad](), 4},
		{"5.1", Channels[Surround51](), 6},
		{"7.1", Channels[Surround71](), 8},
		{"unnamed array", Channels[[2]float32](), 2},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: Channels() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5}

	f := FromInterleaved[Quad](samples)
	if f != (Quad{0.1, 0.2, 0.3, 0.4}) {
		t.Fatalf("FromInterleaved() = %v", f)
	}

	dst := make([]float32, 6)
	if n := Interleave(dst, f); n != 4 {
		t.Errorf("Interleave() wrote %d samples, want 4", n)
	}
	for i := range 4 {
		if dst[i] != samples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], samples[i])
		}
	}
	if dst[4] != 0 || dst[5] != 0 {
		t.Errorf("Interleave() wrote past one frame: %v", dst)
	}
}

func TestShortBuffersPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"FromInterleaved", func() { FromInterleaved[Stereo]([]float32{1}) }},
		{"Interleave", func() { Interleave(make([]float32, 1), Stereo{1, 2}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := Stereo{0.5, -0.25}
	b := Stereo{0.25, 0.25}

	tests := []struct {
		name string
		got  Stereo
		want Stereo
	}{
		{"Add", Add(a, b), Stereo{0.75, 0}},
		{"Sub", Sub(a, b), Stereo{0.25, -0.5}},
		{"Scale", Scale(a, 2), Stereo{1, -0.5}},
		{"Mul", Mul(a, b), Stereo{0.125, -0.0625}},
		{"Lerp start", Lerp(a, b, 0), a},
		{"Lerp end", Lerp(a, b, 1), b},
		{"Lerp mid", Lerp(a, b, 0.5), Stereo{0.375, 0}},
		{"Map", Map(a, func(x float32) float32 { return -x }), Stereo{-0.5, 0.25}},
		{"Zip", Zip(a, b, func(x, y float32) float32 { return x * y }), Stereo{0.125, -0.0625}},
		{"Broadcast", Broadcast[Stereo](0.3), Stereo{0.3, 0.3}},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Arguments are values; the originals are untouched.
	if a != (Stereo{0.5, -0.25}) {
		t.Errorf("operations modified their argument: %v", a)
	}
}

func TestToMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Mono
		want float32
	}{
		{"mono passes through", ToMono(Mono{0.7}), 0.7},
		{"stereo averages", ToMono(Stereo{1, 0}), 0.5},
		{"stereo cancels", ToMono(Stereo{0.5, -0.5}), 0},
		{"quad averages", ToMono(Quad{1, 1, 0, 0}), 0.5},
		{"5.1 averages", ToMono(Surround51{0.6, 0.6, 0.6, 0.6, 0.6, 0.6}), 0.6},
		{"silence", ToMono(Surround71{}), 0},
	}

	for _, tt := range tests {
		if diff := math.Abs(float64(tt.got[0] - tt.want)); diff > 1e-6 {
			t.Errorf("%s: ToMono() = %v, want %v", tt.name, tt.got[0], tt.want)
		}
	}
}

func TestOperationsZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	dst := make([]float32, 6)

	allocs := testing.AllocsPerRun(1000, func() {
		f := FromInterleaved[Surround51](samples)
		f = Lerp(f, Scale(f, 0.5), 0.25)
		Interleave(dst, f)
		_ = ToMono(f)
	})

	if allocs > 0 {
		t.Errorf("frame operations allocated %v times, want 0", allocs)
	}
}

func BenchmarkToMono_Stereo(b *testing.B) {
	f := Stereo{0.3, -0.2}
	var sink Mono

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		sink = ToMono(f)
	}
	_ = sink
}
