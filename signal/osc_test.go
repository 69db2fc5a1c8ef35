// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"slices"
	"testing"

	"github.com/ik5/audbus/frame"
)

func TestPhase(t *testing.T) {
	t.Parallel()

	p := NewPhase(Rate(4).ConstHz(1))
	if got := Take[float64](p, 6); !slices.Equal(got, []float64{0, 0.25, 0.5, 0.75, 0, 0.25}) {
		t.Errorf("phase = %v, want [0 0.25 0.5 0.75 0 0.25]", got)
	}
	if p.IsExhausted() {
		t.Error("phase reported exhaustion")
	}
}

func TestPhase_Hz(t *testing.T) {
	t.Parallel()

	step := Rate(4).Hz(Gen(func() float64 { return 1 }))
	if got := Take[float64](NewPhase(step), 5); !slices.Equal(got, []float64{0, 0.25, 0.5, 0.75, 0}) {
		t.Errorf("phase = %v, want [0 0.25 0.5 0.75 0]", got)
	}

	// Doubling the frequency mid-stream doubles the step.
	hz := []float64{1, 2, 2, 2}
	i := 0
	step = Rate(8).Hz(Gen(func() float64 { v := hz[i]; i++; return v }))
	if got := Take[float64](NewPhase(step), 4); !slices.Equal(got, []float64{0, 0.125, 0.375, 0.625}) {
		t.Errorf("phase = %v, want [0 0.125 0.375 0.625]", got)
	}
}

func TestOscillators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  Signal[float64]
		want []float64
	}{
		{"sine", Sine(Rate(4).ConstHz(1)), []float64{0, 1, 0, -1, 0}},
		{"saw", Saw(Rate(4).ConstHz(1)), []float64{1, 0.5, 0, -0.5, 1}},
		{"square", Square(Rate(4).ConstHz(1)), []float64{1, 1, -1, -1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Take(tt.sig, len(tt.want))
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("%s = %v, want %v", tt.name, got, tt.want)
				}
			}
			if tt.sig.IsExhausted() {
				t.Errorf("%s reported exhaustion", tt.name)
			}
		})
	}
}

func TestNoise(t *testing.T) {
	t.Parallel()

	a := Take(Noise(0), 10_000)
	b := Take(Noise(0), 10_000)
	if !slices.Equal(a, b) {
		t.Error("the same seed produced different sequences")
	}
	if slices.Equal(a[:100], Take(Noise(1), 100)) {
		t.Error("different seeds produced the same sequence")
	}

	var sum float64
	for i, v := range a {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v, want within [-1, 1]", i, v)
		}
		sum += v
	}
	if mean := sum / float64(len(a)); math.Abs(mean) > 0.1 {
		t.Errorf("mean = %v, want close to 0", mean)
	}
}

func TestNoiseSimplex(t *testing.T) {
	t.Parallel()

	// Whole-number phases land on lattice points, which are silent.
	if got := Take(NoiseSimplex(Rate(1).ConstHz(1)), 5); !slices.Equal(got, make([]float64, 5)) {
		t.Errorf("noise at integer phases = %v, want zeros", got)
	}

	sig := NoiseSimplex(Rate(44100).ConstHz(440))
	var nonZero bool
	for i, v := range Take(sig, 100_000) {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v, want within [-1, 1]", i, v)
		}
		nonZero = nonZero || v != 0
	}
	if !nonZero {
		t.Error("simplex noise was silent")
	}
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	sig := Broadcast[frame.Stereo](Square(Rate(4).ConstHz(1)))
	want := []frame.Stereo{{1, 1}, {1, 1}, {-1, -1}, {-1, -1}}
	if got := Take(sig, 4); !slices.Equal(got, want) {
		t.Errorf("Broadcast = %v, want %v", got, want)
	}
}
