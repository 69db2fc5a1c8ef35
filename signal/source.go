// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/ring"
)

const (
	defaultBlockFrames = 1024
	// maxEmptyReads bounds how many times a source may return no samples and
	// no error in a row before it is treated as stuck.
	maxEmptyReads = 100
)

// SourceOption configures FromSource.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	blockFrames int
}

// WithBlockFrames sets how many frames FromSource reads from the source at a
// time. Values below 1 are ignored.
func WithBlockFrames(n int) SourceOption {
	return func(c *sourceConfig) {
		if n > 0 {
			c.blockFrames = n
		}
	}
}

// SourceSignal reads frames from an audio.Source. It implements Signal.
//
// Samples are read in blocks into a ring buffer and handed out one frame at a
// time. After the source ends, or fails, Next returns zero frames; Err
// reports the failure.
type SourceSignal[F frame.Frame] struct {
	src      audio.Source
	rb       *ring.Bounded[float32]
	scratch  []float32
	frameBuf []float32
	done     bool
	err      error
}

// FromSource creates a signal reading F frames from src.
//
// It returns ErrChannelMismatch when F does not have as many channels as src.
func FromSource[F frame.Frame](src audio.Source, opts ...SourceOption) (*SourceSignal[F], error) {
	cfg := sourceConfig{blockFrames: defaultBlockFrames}
	for _, opt := range opts {
		opt(&cfg)
	}

	channels := frame.Channels[F]()
	if got := audio.Channels(src); got != channels {
		return nil, fmt.Errorf("%w: source has %d, frame has %d", ErrChannelMismatch, got, channels)
	}

	samples := cfg.blockFrames * channels
	return &SourceSignal[F]{
		src:      src,
		rb:       ring.NewBoundedSize[float32](samples),
		scratch:  make([]float32, samples),
		frameBuf: make([]float32, channels),
	}, nil
}

// refill reads from the source until at least one frame is buffered or the
// source is done.
func (s *SourceSignal[F]) refill() {
	channels := len(s.frameBuf)
	empty := 0
	for !s.done && s.rb.Len() < channels {
		// Read whole frames only, into the free part of the ring.
		want := s.rb.Remaining() / channels * channels
		if want == 0 {
			want = s.rb.Remaining()
		}
		n, err := s.src.ReadSamples(s.scratch[:want])
		if n > 0 {
			s.rb.Extend(s.scratch[:n])
			empty = 0
		}

		switch {
		case errors.Is(err, io.EOF):
			s.done = true
		case err != nil:
			s.done = true
			s.err = fmt.Errorf("%w", err)
		case n == 0:
			if empty++; empty >= maxEmptyReads {
				s.done = true
				s.err = io.ErrNoProgress
			}
		}
	}
}

func (s *SourceSignal[F]) Next() F {
	s.refill()
	if s.rb.Len() < len(s.frameBuf) {
		var zero F
		return zero
	}
	s.rb.Read(s.frameBuf)
	return frame.FromInterleaved[F](s.frameBuf)
}

// IsExhausted reports whether the source has ended and fewer than one frame
// remains buffered. A trailing partial frame is dropped.
func (s *SourceSignal[F]) IsExhausted() bool {
	s.refill()
	return s.done && s.rb.Len() < len(s.frameBuf)
}

// Err returns the error that ended the source early, if any. io.EOF is not
// an error.
func (s *SourceSignal[F]) Err() error {
	return s.err
}

// Close closes the source.
func (s *SourceSignal[F]) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// SignalSource presents a Signal as an audio.Source.
type SignalSource[F frame.Frame] struct {
	sig    Signal[F]
	format goaudio.Format
}

// NewSource presents sig as an audio.Source at sampleRate. Reads end with
// io.EOF once sig is exhausted.
func NewSource[F frame.Frame](sig Signal[F], sampleRate int) *SignalSource[F] {
	return &SignalSource[F]{
		sig:    sig,
		format: goaudio.Format{NumChannels: frame.Channels[F](), SampleRate: sampleRate},
	}
}

func (s *SignalSource[F]) Format() *goaudio.Format {
	f := s.format
	return &f
}

func (s *SignalSource[F]) Close() error { return nil }

func (s *SignalSource[F]) ReadSamples(dst []float32) (int, error) {
	channels := s.format.NumChannels
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		if s.sig.IsExhausted() {
			return n, io.EOF
		}
		n += frame.Interleave(dst[n:], s.sig.Next())
	}
	return n, nil
}
