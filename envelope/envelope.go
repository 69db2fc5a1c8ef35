// SPDX-License-Identifier: EPL-2.0

// Package envelope follows the level of a signal with separate attack and
// release times.
//
// A Detector first measures every frame (peak rectification or a running
// RMS) and then smooths the result with one-pole filters: rising levels move
// at the attack rate, falling ones at the release rate. Times are given in
// frames; a time of 0 follows the measured level instantly.
//
//	det := envelope.NewPeak[frame.Stereo](64, 4410)
//	level := signal.DetectEnvelope(sig, det)
package envelope

import (
	"math"

	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/peak"
	"github.com/ik5/audbus/rms"
)

// Detector smooths a measured level per channel.
type Detector[F frame.Frame] struct {
	measure func(F) F
	env     F
	attack  float32
	release float32
}

// New creates a Detector around measure.
func New[F frame.Frame](measure func(F) F, attackFrames, releaseFrames float32) *Detector[F] {
	d := &Detector[F]{measure: measure}
	d.SetAttackFrames(attackFrames)
	d.SetReleaseFrames(releaseFrames)
	return d
}

// NewPeak creates a full-wave peak Detector.
func NewPeak[F frame.Frame](attackFrames, releaseFrames float32) *Detector[F] {
	return New(peak.FullWave[F], attackFrames, releaseFrames)
}

// NewPeakRectifier creates a peak Detector that rectifies with r.
func NewPeakRectifier[F frame.Frame](r peak.Rectifier[F], attackFrames, releaseFrames float32) *Detector[F] {
	return New(r, attackFrames, releaseFrames)
}

// NewRMS creates a Detector over the RMS of the last window frames.
// Panics if window < 1.
func NewRMS[F frame.Frame](window int, attackFrames, releaseFrames float32) *Detector[F] {
	return New(rms.New[F](window).Next, attackFrames, releaseFrames)
}

// gain is the one-pole coefficient reaching 1/e of a step after frames
// frames.
func gain(frames float32) float32 {
	if frames <= 0 {
		return 0
	}
	return float32(math.Exp(-1 / float64(frames)))
}

// SetAttackFrames changes the attack time.
func (d *Detector[F]) SetAttackFrames(frames float32) {
	d.attack = gain(frames)
}

// SetReleaseFrames changes the release time.
func (d *Detector[F]) SetReleaseFrames(frames float32) {
	d.release = gain(frames)
}

// Next measures f and returns the updated envelope.
func (d *Detector[F]) Next(f F) F {
	measured := d.measure(f)
	d.env = frame.Zip(d.env, measured, func(last, x float32) float32 {
		g := d.release
		if last < x {
			g = d.attack
		}
		return x + (last-x)*g
	})
	return d.env
}

// Current returns the envelope without advancing it.
func (d *Detector[F]) Current() F {
	return d.env
}

// Reset drops the envelope back to silence. State kept by the measure, such
// as an RMS window, is not touched.
func (d *Detector[F]) Reset() {
	d.env = *new(F)
}
