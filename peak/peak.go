// SPDX-License-Identifier: EPL-2.0

// Package peak rectifies frames, the first step of peak detection.
package peak

import "github.com/ik5/audbus/frame"

// Rectifier maps a frame to its rectified form.
type Rectifier[F frame.Frame] func(f F) F

// FullWave returns the absolute value of every channel.
func FullWave[F frame.Frame](f F) F {
	return frame.Map(f, func(x float32) float32 { return max(x, -x) })
}

// PositiveHalfWave keeps positive samples and replaces the rest with silence.
func PositiveHalfWave[F frame.Frame](f F) F {
	return frame.Map(f, func(x float32) float32 { return max(x, 0) })
}

// NegativeHalfWave keeps negative samples and replaces the rest with silence.
func NegativeHalfWave[F frame.Frame](f F) F {
	return frame.Map(f, func(x float32) float32 { return min(x, 0) })
}
