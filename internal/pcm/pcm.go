// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/sample"
)

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts the integer samples of a Reader to float32.
type Source struct {
	dec      Reader
	format   goaudio.Format
	bitDepth int
	// unsigned8 marks 8-bit data stored as 0..255 around 128.
	unsigned8 bool
	intBuf    *goaudio.IntBuffer
}

// NewSource creates a Source reading samples of bitDepth bits from dec.
// Set unsigned8 for 8-bit WAV data.
func NewSource(dec Reader, format goaudio.Format, bitDepth int, unsigned8 bool) *Source {
	return &Source{
		dec:       dec,
		format:    format,
		bitDepth:  bitDepth,
		unsigned8: unsigned8 && bitDepth == 8,
	}
}

func (s *Source) Format() *goaudio.Format {
	f := s.format
	return &f
}

// BitDepth returns the bit depth of the stored samples.
func (s *Source) BitDepth() int { return s.bitDepth }

func (s *Source) Close() error { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.format.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		f := s.format
		s.intBuf = &goaudio.IntBuffer{
			Format:         &f,
			Data:           make([]int, len(dst)),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		if s.unsigned8 {
			v -= 128
		}
		dst[i] = sample.FromInt(v, s.bitDepth)
	}

	switch {
	case errors.Is(err, io.EOF), err == nil && n == 0:
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// ReadSeeker returns r itself when it can seek, otherwise its whole content
// in memory. The go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bytes.NewReader(data), nil
}
