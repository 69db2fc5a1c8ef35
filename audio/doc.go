// SPDX-License-Identifier: EPL-2.0

// Package audio defines the stream interface shared by decoders, encoders and
// the signal package.
//
// # Source Interface
//
// A Source is a stream of interleaved float32 samples:
//
//	type Source interface {
//	    Format() *goaudio.Format
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Format reports the channel count and sample rate using the go-audio Format
// type, so sources interoperate with the go-audio codecs. Channels and
// SampleRate are shorthands for the two fields.
//
// To process a Source frame by frame, wrap it with signal.FromSource. To turn
// a signal back into a Source, use signal.NewSource.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// Decode returns an *UnknownFormatError, matching ErrUnknownFormat, for keys
// without a decoder. The registry is safe for concurrent use.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The sample package converts between this range and integer PCM.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Samples returned
// together with io.EOF are valid and must be processed:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
