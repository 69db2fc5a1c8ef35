// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audbus/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec    oggReader
	format goaudio.Format
}

func newSource(dec oggReader) *source {
	return &source{
		dec: dec,
		format: goaudio.Format{
			NumChannels: dec.Channels(),
			SampleRate:  dec.SampleRate(),
		},
	}
}

func (s *source) Format() *goaudio.Format {
	f := s.format
	return &f
}

func (s *source) Close() error { return nil }

// ReadSamples decodes straight into dst. oggvorbis already produces
// interleaved float32 and counts values, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.format.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		return n, io.EOF
	}
	return n, fmt.Errorf("%w", err)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() < 1 {
		return nil, ErrNotVorbisFile
	}

	return newSource(dec), nil
}
