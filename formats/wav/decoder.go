// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/internal/pcm"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

// Decoder decodes integer PCM WAV files.
type Decoder struct{}

// Decode parses the WAV headers and positions r at the start of the sample
// data. Readers that cannot seek are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	err = dec.FwdToPCM()
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := goaudio.Format{
		NumChannels: int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
	}
	return pcm.NewSource(dec, format, int(dec.BitDepth), true), nil
}
