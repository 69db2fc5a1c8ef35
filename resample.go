// SPDX-License-Identifier: EPL-2.0

package audbus

import (
	"fmt"
	"slices"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/interp"
	"github.com/ik5/audbus/sample"
	"github.com/ik5/audbus/signal"
)

// ResampleToMono16 is a high-level convenience function that converts audio
// to mono, resamples it to a target sample rate, and collects all samples as
// 16-bit PCM data.
//
// This function creates a processing pipeline:
//  1. Reads the source as frames and averages the channels to mono
//  2. Converts the mono signal to targetRate using cubic interpolation
//  3. Converts float32 samples to int16 PCM format
//
// Sources with 1, 2, 4, 6 or 8 channels are supported. For n source frames
// the result holds floor((n-1)*targetRate/sourceRate)+1 samples, the first
// on source frame 0 and the last on or before source frame n-1.
//
// Returns the collected samples and the output sample rate (targetRate).
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audbus.ResampleToMono16(src, 8000)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Source, targetRate int) ([]int16, int, error) {
	sourceRate := audio.SampleRate(src)
	if targetRate <= 0 || sourceRate <= 0 {
		return nil, targetRate, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, sourceRate, targetRate)
	}

	mono, srcErr, err := monoFrames(src)
	if err != nil {
		return nil, targetRate, err
	}

	frames := slices.Collect(signal.UntilExhausted[frame.Mono](mono))
	if err := srcErr(); err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}
	if len(frames) == 0 {
		return []int16{}, targetRate, nil
	}

	// The cubic reads one frame ahead of the pair it interpolates, so its
	// history starts as frames 0, 0, 1, 2 and the rest follow from frame 3.
	// Past the end the slice signal yields silence.
	at := func(i int) frame.Mono {
		if i < len(frames) {
			return frames[i]
		}
		return frame.Mono{}
	}
	cubic := interp.NewCubic(at(0), at(1))
	cubic.NextSource(at(2))
	rest := signal.FromSlice(frames[min(3, len(frames)):])
	conv := signal.FromHzToHz[frame.Mono](rest, cubic, float64(sourceRate), float64(targetRate))

	n := (len(frames)-1)*targetRate/sourceRate + 1
	pcm16 := make([]int16, n)
	for i := range pcm16 {
		pcm16[i] = sample.ToInt16(conv.Next()[0])
	}

	return pcm16, targetRate, nil
}
