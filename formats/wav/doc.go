// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions are built on github.com/go-audio/wav.
//
// # Supported Formats
//
// Decoding:
//   - Integer PCM at 8, 16, 24 and 32 bits (8-bit data is unsigned)
//   - Any channel count and sample rate
//   - Unknown chunks before the sample data are skipped
//
// Encoding:
//   - 16-bit PCM, any channel count
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder needs to seek. An io.Reader that is not an io.ReadSeeker is
// read into memory first. ReadSamples takes buffers holding whole frames
// and returns float32 samples in [-1.0, 1.0].
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200} // two stereo frames
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
//
// The header sizes are written after the data, so the destination must be
// an io.WriteSeeker.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE headers
//   - ErrUnsupportedEncoding: the data is not integer PCM
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavChunks: no sample data was found
//   - ErrInvalidChannels, ErrPartialFrame: bad arguments to WriteWAV16
//
// Errors may be wrapped; compare with errors.Is:
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
