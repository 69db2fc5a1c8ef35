// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Step yields the phase increment for one frame.
type Step interface {
	Step() float64
}

// Rate is the frame rate, in Hz, at which an oscillator is sampled.
type Rate float64

// ConstHz returns a Step that advances by hz/r every frame.
func (r Rate) ConstHz(hz float64) ConstHz {
	return ConstHz(hz / float64(r))
}

// Hz returns a Step whose frequency is read from hz every frame.
func (r Rate) Hz(hz Signal[float64]) *Hz {
	return &Hz{rate: float64(r), hz: hz}
}

// ConstHz is a constant phase increment.
type ConstHz float64

func (c ConstHz) Step() float64 { return float64(c) }

// Hz is a phase increment driven by a frequency signal.
type Hz struct {
	rate float64
	hz   Signal[float64]
}

func (h *Hz) Step() float64 { return h.hz.Next() / h.rate }

// Phase is a position in [0, 1) advanced by a Step.
type Phase struct {
	step Step
	next float64
}

// NewPhase starts a phase at 0.
func NewPhase(step Step) *Phase {
	return &Phase{step: step}
}

// NextPhaseWrappedTo returns the current phase and advances it, wrapping at
// rem.
func (p *Phase) NextPhaseWrappedTo(rem float64) float64 {
	phase := p.next
	p.next = math.Mod(p.next+p.step.Step(), rem)
	return phase
}

// NextPhase returns the current phase and advances it, wrapping at 1.
func (p *Phase) NextPhase() float64 {
	return p.NextPhaseWrappedTo(1)
}

// Next implements Signal. A phase never runs out.
func (p *Phase) Next() float64     { return p.NextPhase() }
func (p *Phase) IsExhausted() bool { return false }

type oscillator struct {
	phase *Phase
	wave  func(phase float64) float64
}

func (o oscillator) Next() float64     { return o.wave(o.phase.NextPhase()) }
func (o oscillator) IsExhausted() bool { return false }

// Sine yields a sine wave starting at phase 0.
//
//	tone := signal.Sine(signal.Rate(44100).ConstHz(440))
func Sine(step Step) Signal[float64] {
	return oscillator{phase: NewPhase(step), wave: func(p float64) float64 {
		return math.Sin(2 * math.Pi * p)
	}}
}

// Saw yields a falling saw wave from 1 to -1.
func Saw(step Step) Signal[float64] {
	return oscillator{phase: NewPhase(step), wave: func(p float64) float64 {
		return p*-2 + 1
	}}
}

// Square yields 1 for the first half of every period and -1 for the second.
func Square(step Step) Signal[float64] {
	return oscillator{phase: NewPhase(step), wave: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}}
}

type noise struct {
	seed uint64
}

// Noise yields deterministic pseudo-random values in [-1, 1]. The same seed
// always produces the same sequence.
func Noise(seed uint64) Signal[float64] {
	return &noise{seed: seed}
}

func (n *noise) Next() float64 {
	const (
		prime1 = 15_731
		prime2 = 789_221
		prime3 = 1_376_312_589
	)
	x := n.seed<<13 ^ n.seed
	n.seed++
	// uint64 arithmetic wraps.
	h := x*(x*x*prime1+prime2) + prime3
	return 1 - float64(h&0x7fffffff)/1_073_741_824
}

func (n *noise) IsExhausted() bool { return false }

// simplexWrap is the first power of two above twice the audible range, so
// the noise pattern cannot repeat more than once a second.
const simplexWrap = 65_536

type noiseSimplex struct {
	phase *Phase
}

// NoiseSimplex yields one-dimensional simplex noise in [-1, 1], sampled at the
// positions of a phase advanced by step. Integer positions yield 0.
func NoiseSimplex(step Step) Signal[float64] {
	return noiseSimplex{phase: NewPhase(step)}
}

func (s noiseSimplex) Next() float64 {
	return simplex1D(s.phase.NextPhaseWrappedTo(simplexWrap))
}

func (s noiseSimplex) IsExhausted() bool { return false }

var simplexPerm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36,
	103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0,
	26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33, 88, 237, 149, 56, 87,
	174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166, 77, 146,
	158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40,
	244, 102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18,
	169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206,
	59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2,
	44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9, 129, 22, 39, 253, 19, 98,
	108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34, 242,
	193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4,
	150, 254, 138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66,
	215, 61, 156, 180,
}

func simplex1D(x float64) float64 {
	grad := func(i int64, x float64) float64 {
		h := simplexPerm[uint8(i)] & 0x0F
		g := 1 + float64(h&7)
		if h&8 != 0 {
			g = -g
		}
		return g * x
	}

	i0 := int64(math.Floor(x))
	x0 := x - float64(i0)
	x1 := x0 - 1

	t0 := 1 - x0*x0
	t0 *= t0
	t1 := 1 - x1*x1
	t1 *= t1

	n0 := t0 * t0 * grad(i0, x0)
	n1 := t1 * t1 * grad(i0+1, x1)

	// The raw peak is 2.53125.
	return 0.395 * (n0 + n1)
}
