// SPDX-License-Identifier: EPL-2.0

// Package sample converts between normalized float32 samples and integer PCM.
//
// Float samples live in [-1, 1]. Integer PCM is signed, with the bit depth
// deciding the full-scale value (32767 for 16-bit, 8388607 for 24-bit).
// Values outside the float range are clamped before conversion.
package sample

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// ToInt16 converts x to 16-bit PCM.
//
// The positive side scales by 32767 so that 1.0 does not overflow, the
// negative side by 32768 so that -1.0 reaches math.MinInt16.
func ToInt16(x float32) int16 {
	x = Clamp(x)
	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// FromInt16 converts a 16-bit PCM value to [-1, 1).
func FromInt16(v int16) float32 {
	return float32(v) / 32768.0
}

// FromInt converts a signed PCM value of the given bit depth to float32.
// 8-bit input is taken as already centred on zero.
func FromInt(v int, bitDepth int) float32 {
	return float32(float64(v) / fullScale(bitDepth))
}

// ToInt converts x to a signed PCM value of the given bit depth.
func ToInt(x float32, bitDepth int) int {
	x = Clamp(x)
	scale := fullScale(bitDepth)
	if x < 0 {
		return int(float64(x) * scale)
	}
	return int(float64(x) * (scale - 1))
}

// fullScale returns 2^(bitDepth-1).
func fullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}
