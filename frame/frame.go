// SPDX-License-Identifier: EPL-2.0

// Package frame defines fixed-size multi-channel audio frames.
//
// A frame holds one float32 sample per channel, taken at the same instant.
// Frames are plain arrays, so they are copied by value and never allocate:
//
//	var f frame.Stereo
//	f[0], f[1] = 0.5, -0.5
//	m := frame.ToMono(f) // frame.Mono{0}
//
// The zero value of every frame type is silence (equilibrium).
//
// Samples are float32 in [-1, 1], the same normalized range the audio and
// formats packages produce.
package frame

// Frame is the set of frame types understood by the audio-aware parts of the
// module.
type Frame interface {
	~[1]float32 | ~[2]float32 | ~[4]float32 | ~[6]float32 | ~[8]float32
}

type (
	// Mono is a single-channel frame.
	Mono [1]float32
	// Stereo is a left/right frame.
	Stereo [2]float32
	// Quad is a four-channel frame.
	Quad [4]float32
	// Surround51 is a 5.1 frame.
	Surround51 [6]float32
	// Surround71 is a 7.1 frame.
	Surround71 [8]float32
)

// Channels returns the number of channels in F.
func Channels[F Frame]() int {
	var f F
	return len(f)
}

// FromInterleaved reads one frame from the front of samples.
//
// Panics if len(samples) is smaller than the channel count of F.
func FromInterleaved[F Frame](samples []float32) F {
	var f F
	n := len(f)
	if len(samples) < n {
		panic("frame: not enough samples for one frame")
	}
	for i := 0; i < n; i++ {
		f[i] = samples[i]
	}
	return f
}

// Interleave writes f to the front of dst and returns the number of samples
// written.
//
// Panics if dst cannot hold one frame.
func Interleave[F Frame](dst []float32, f F) int {
	n := len(f)
	if len(dst) < n {
		panic("frame: destination too small for one frame")
	}
	for i := 0; i < n; i++ {
		dst[i] = f[i]
	}
	return n
}

// Add returns the per-channel sum of a and b.
func Add[F Frame](a, b F) F {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

// Sub returns the per-channel difference a - b.
func Sub[F Frame](a, b F) F {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

// Mul returns the per-channel product of a and b.
func Mul[F Frame](a, b F) F {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}
	return a
}

// Scale multiplies every channel of f by gain.
func Scale[F Frame](f F, gain float32) F {
	for i := 0; i < len(f); i++ {
		f[i] *= gain
	}
	return f
}

// Lerp interpolates linearly between a (t = 0) and b (t = 1).
func Lerp[F Frame](a, b F, t float32) F {
	for i := 0; i < len(a); i++ {
		a[i] += (b[i] - a[i]) * t
	}
	return a
}

// Map applies fn to every channel of f.
func Map[F Frame](f F, fn func(float32) float32) F {
	for i := 0; i < len(f); i++ {
		f[i] = fn(f[i])
	}
	return f
}

// Zip combines a and b channel by channel with fn.
func Zip[F Frame](a, b F, fn func(x, y float32) float32) F {
	for i := 0; i < len(a); i++ {
		a[i] = fn(a[i], b[i])
	}
	return a
}

// ToMono averages the channels of f.
func ToMono[F Frame](f F) Mono {
	n := len(f)
	if n == 1 {
		return Mono{f[0]}
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += f[i]
	}
	return Mono{sum / float32(n)}
}

// Broadcast returns a frame of type F with every channel set to v.
func Broadcast[F Frame](v float32) F {
	var f F
	for i := 0; i < len(f); i++ {
		f[i] = v
	}
	return f
}
