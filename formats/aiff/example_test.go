// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/formats/aiff"
	"github.com/ik5/audbus/formats/wav"
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/internal/audiotest"
	"github.com/ik5/audbus/signal"
)

// stereoAIFF builds a 16-bit stereo AIFF file at 8000 Hz in memory.
func stereoAIFF(samples ...int16) []byte {
	data := new(bytes.Buffer)
	binary.Write(data, binary.BigEndian, samples)

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(4+8+18+8+8+data.Len()))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(18))
	binary.Write(buf, binary.BigEndian, int16(2))
	binary.Write(buf, binary.BigEndian, uint32(len(samples)/2))
	binary.Write(buf, binary.BigEndian, int16(16))
	// 8000 as an 80-bit IEEE extended float
	buf.Write([]byte{0x40, 0x0B, 0xFA, 0, 0, 0, 0, 0, 0, 0})

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(8+data.Len()))
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

// Example demonstrates basic AIFF decoding.
func Example() {
	src, err := aiff.Decoder{}.Decode(bytes.NewReader(stereoAIFF(16384, -16384, 8192, -8192)))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	defer src.Close()

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n", audio.SampleRate(src), audio.Channels(src))

	buf := make([]float32, 8)
	n, _ := src.ReadSamples(buf)
	fmt.Println(buf[:n])
	// Output:
	// Decoded AIFF: 8000 Hz, 2 channels
	// [0.5 -0.5 0.25 -0.25]
}

// ExampleDecoder_Decode_convertToWav converts AIFF samples to a WAV file.
func ExampleDecoder_Decode_convertToWav() {
	src, err := aiff.Decoder{}.Decode(bytes.NewReader(stereoAIFF(100, -100, 200, -200)))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf := make([]float32, 64)
	var samples []int16
	for {
		n, err := src.ReadSamples(buf)
		for _, s := range buf[:n] {
			samples = append(samples, int16(s*32768.0))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			return
		}
	}

	// In real code, use os.Create
	var out audiotest.WriteSeeker
	if err := wav.WriteWAV16(&out, audio.SampleRate(src), audio.Channels(src), samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("AIFF converted to WAV: %d bytes\n", len(out.Bytes()))
	// Output: AIFF converted to WAV: 52 bytes
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Detected: Not a valid AIFF file")
	}
	// Output: Detected: Not a valid AIFF file
}

// ExampleDecoder_Decode_frames reads big-endian stereo data as frames.
func ExampleDecoder_Decode_frames() {
	src, err := aiff.Decoder{}.Decode(bytes.NewReader(stereoAIFF(16384, -16384, -32768, 0)))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	frames, err := signal.FromSource[frame.Stereo](src)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for f := range signal.UntilExhausted[frame.Stereo](frames) {
		fmt.Println(f)
	}
	// Output:
	// [0.5 -0.5]
	// [-1 0]
}
