// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// writeChunk is roughly the number of samples handed to the encoder at a
// time. The encoder drops partial frames, so chunks are cut on frame
// boundaries.
const writeChunk = 8192

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file.
//
// The sizes in the header are patched once the data is written, so w must
// be able to seek.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(samples), channels)
	}

	chunk := max(writeChunk/channels, 1) * channels
	enc := gowav.NewEncoder(w, sampleRate, 16, channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, min(len(samples), chunk)),
		SourceBitDepth: 16,
	}

	// An empty file still gets its headers from one empty write.
	for start := 0; ; start += chunk {
		end := min(start+chunk, len(samples))
		buf.Data = buf.Data[:end-start]
		for i, s := range samples[start:end] {
			buf.Data[i] = int(s)
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
		if end == len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
