// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/interp"
)

// Converter changes the rate of a signal by stepping an interpolator through
// it.
//
// Every output frame advances a fractional position by the source-to-target
// ratio. Whenever the position passes a whole source frame, the next source
// frame is fed to the interpolator.
type Converter[F frame.Frame] struct {
	source Signal[F]
	interp interp.Interpolator[F]
	value  float64
	ratio  float64
}

// FromHzToHz converts sig from sourceHz to targetHz.
func FromHzToHz[F frame.Frame](sig Signal[F], ip interp.Interpolator[F], sourceHz, targetHz float64) *Converter[F] {
	return ScalePlaybackHz(sig, ip, sourceHz/targetHz)
}

// ScalePlaybackHz plays sig back scale times as fast. Panics if scale <= 0.
func ScalePlaybackHz[F frame.Frame](sig Signal[F], ip interp.Interpolator[F], scale float64) *Converter[F] {
	mustPositive(scale)
	return &Converter[F]{source: sig, interp: ip, ratio: scale}
}

// ScaleSampleHz multiplies the sample rate of sig by scale. Panics if
// scale <= 0.
func ScaleSampleHz[F frame.Frame](sig Signal[F], ip interp.Interpolator[F], scale float64) *Converter[F] {
	mustPositive(scale)
	return ScalePlaybackHz(sig, ip, 1/scale)
}

func mustPositive(scale float64) {
	if !(scale > 0) {
		panic("signal: converter scale must be positive")
	}
}

// SetHzToHz changes the conversion to sourceHz -> targetHz.
func (c *Converter[F]) SetHzToHz(sourceHz, targetHz float64) {
	c.SetPlaybackHzScale(sourceHz / targetHz)
}

// SetPlaybackHzScale changes the playback scale. Panics if scale <= 0.
func (c *Converter[F]) SetPlaybackHzScale(scale float64) {
	mustPositive(scale)
	c.ratio = scale
}

// SetSampleHzScale changes the sample rate scale. Panics if scale <= 0.
func (c *Converter[F]) SetSampleHzScale(scale float64) {
	mustPositive(scale)
	c.ratio = 1 / scale
}

// Source returns the signal being converted.
func (c *Converter[F]) Source() Signal[F] {
	return c.source
}

func (c *Converter[F]) Next() F {
	for c.value >= 1 {
		c.interp.NextSource(c.source.Next())
		c.value--
	}
	out := c.interp.Interpolate(c.value)
	c.value += c.ratio
	return out
}

func (c *Converter[F]) IsExhausted() bool {
	return c.source.IsExhausted() && c.value >= 1
}
