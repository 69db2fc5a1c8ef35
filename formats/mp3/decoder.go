// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/sample"
)

// go-mp3 always produces interleaved stereo, 16-bit little-endian.
const (
	channels   = 2
	frameBytes = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec    mp3Reader
	format goaudio.Format
	buf    []byte
	done   bool
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec: dec,
		format: goaudio.Format{
			NumChannels: channels,
			SampleRate:  dec.SampleRate(),
		},
	}
}

func (s *source) Format() *goaudio.Format {
	f := s.format
	return &f
}

func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.dec, s.buf)
	// A truncated last frame is dropped.
	n -= n % frameBytes

	samples := n / 2
	for i := range samples {
		dst[i] = sample.FromInt16(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return samples, io.EOF
	}
	return samples, fmt.Errorf("%w", err)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}
