// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/internal/audiotest"
)

// mockDecoder is a simple decoder for testing the registry.
type mockDecoder struct{}

func (m mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	src, err := registry.Decode("mock", strings.NewReader(""))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer src.Close()

	fmt.Printf("Decoded: %d Hz, %d channel(s)\n", audio.SampleRate(src), audio.Channels(src))

	_, err = registry.Decode("unknown", strings.NewReader(""))
	fmt.Println(errors.Is(err, audio.ErrUnknownFormat), err)
	fmt.Println("Formats:", registry.Formats())
	// Output:
	// Decoded: 16000 Hz, 1 channel(s)
	// true no decoder registered for format: "unknown"
	// Formats: [mock]
}

// Example_errorHandling shows proper error handling when reading a source.
func Example_errorHandling() {
	source := audiotest.NewSineSource(16000, 1, 1000, 440.0) // Short audio

	buf := make([]float32, 4096)
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)

		// Always process available samples first
		if n > 0 {
			totalSamples += n
		}

		if err == io.EOF {
			fmt.Println("Reached end of audio stream")
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			break
		}
	}

	fmt.Printf("Successfully processed %d samples\n", totalSamples)
	// Output:
	// Reached end of audio stream
	// Successfully processed 1000 samples
}

// Example_buffering demonstrates reusing one buffer across reads.
func Example_buffering() {
	source := audiotest.NewSineSource(16000, 1, 16000, 440.0)

	buf := make([]float32, 4096) // Allocate once

	readCount := 0
	for {
		n, err := source.ReadSamples(buf) // Reuse same buffer
		if n > 0 {
			readCount++
		}
		if err == io.EOF {
			break
		}
	}

	fmt.Printf("Read audio in %d chunks with one buffer allocation\n", readCount)
	// Output:
	// Read audio in 4 chunks with one buffer allocation
}
