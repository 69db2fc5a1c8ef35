// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// It provides a simple interface for reading MP3 audio as PCM samples.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Mono and stereo files (both decoded as stereo)
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// ReadSamples needs an even-length buffer. A truncated last frame is
// dropped.
//
// To downmix or resample, read the source as frame.Stereo through the
// signal package:
//
//	frames, _ := signal.FromSource[frame.Stereo](source)
//	mono := signal.Mono[frame.Stereo](frames)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo
//
// # Error Handling
//
// Decode wraps the go-mp3 error with ErrNotMP3File:
//
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    fmt.Println("Not an MP3 stream")
//	}
//
// Example converting MP3 to WAV:
//
//	mp3File, _ := os.Open("input.mp3")
//	source, _ := mp3.Decoder{}.Decode(mp3File)
//
//	// Resample and convert to mono
//	pcm16, rate, _ := audbus.ResampleToMono16(source, 8000)
//
//	// Write as WAV
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, rate, 1, pcm16)
package mp3
