// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	format       goaudio.Format
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		format:       goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewRampSource creates a mock source whose sample i on channel c is
// (i + 1) / 1000 with the sign flipped on odd channels, so every sample
// position is distinguishable.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		v := float32(sample+1) / 1000
		if channel%2 == 1 {
			return -v
		}
		return v
	})
}

func (m *MockSource) Format() *goaudio.Format {
	f := m.format
	return &f
}

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	channels := m.format.NumChannels
	framesToWrite := min(len(dst)/channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range channels {
			dst[frame*channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// ErrSource returns err from its first read, after delivering the samples
// it was created with.
type ErrSource struct {
	format  goaudio.Format
	samples []float32
	err     error
}

// NewErrSource creates an ErrSource.
func NewErrSource(sampleRate, channels int, samples []float32, err error) *ErrSource {
	return &ErrSource{
		format:  goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		samples: samples,
		err:     err,
	}
}

func (e *ErrSource) Format() *goaudio.Format {
	f := e.format
	return &f
}

func (e *ErrSource) Close() error { return nil }

func (e *ErrSource) ReadSamples(dst []float32) (int, error) {
	n := copy(dst, e.samples)
	e.samples = e.samples[n:]
	if len(e.samples) > 0 {
		return n, nil
	}
	return n, e.err
}
