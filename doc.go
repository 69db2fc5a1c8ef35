// SPDX-License-Identifier: EPL-2.0

// Package audbus provides ring buffers and frame signals for fanning one
// audio stream out to several consumers.
//
// The building blocks live in subpackages:
//   - ring: Fixed and Bounded ring buffers over any element type
//   - frame: fixed-size multi-channel frames (Mono, Stereo, ... Surround71)
//   - signal: pull-based frame streams, the Bus and Fork fan-out nodes,
//     rate conversion and the bridge to and from audio.Source
//   - interp, rms, window: interpolators, RMS detection and overlapping
//     windows built on the ring buffers
//   - audio and formats/...: decoders producing audio.Source streams
//
// This package holds the high-level conveniences.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to process audio is using ResampleToMono16:
//
//	file, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// Resample to 8kHz mono, 16-bit PCM
//	samples, rate, _ := audbus.ResampleToMono16(src, 8000)
//
// SplitMono16 reads a source once and returns one mono rendering per
// consumer, pulled through a signal.Bus:
//
//	outs, _ := audbus.SplitMono16(src, 3)
//
// # Building Pipelines
//
// For more control, read the source as frames and compose signals:
//
//	frames, _ := signal.FromSource[frame.Stereo](src)
//	mono := signal.Mono[frame.Stereo](frames)
//	conv := signal.FromHzToHz[frame.Mono](mono, interp.NewLinear(frame.Mono{}, frame.Mono{}), 44100, 16000)
//
//	bus := signal.NewBus[frame.Mono](conv)
//	recorder, monitor := bus.Send(), bus.Send()
//
// Nothing in the pipeline spawns goroutines. Bus and Fork panic when they
// are re-entered while serving a request.
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, 1, samples)
//
// See the individual subpackages for more detailed documentation.
package audbus
