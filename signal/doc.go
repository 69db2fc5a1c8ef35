// SPDX-License-Identifier: EPL-2.0

// Package signal provides pull-based frame producers and the means to share
// one producer between several consumers.
//
// # Signals
//
// A Signal hands out one frame per call to Next and reports through
// IsExhausted whether it has run out. Frames can be any value type; the
// audio-aware parts (Mono, Converter, FromSource) work on frame.Frame.
//
//	sig := signal.FromSlice([]frame.Stereo{{0.1, 0.1}, {0.2, 0.2}})
//	for f := range signal.UntilExhausted(sig) {
//	    ...
//	}
//
// # Sharing a signal
//
// Pulling a signal consumes it. To feed several consumers from one signal,
// wrap it in a Bus or a Fork.
//
// A Bus supports any number of outputs, each reading at its own pace. Frames
// are kept in a growable queue until every open output has read them:
//
//	bus := signal.NewBus(sig)
//	left, right := bus.Send(), bus.Send()
//	defer left.Close()
//	defer right.Close()
//
// A Fork has exactly two branches and a fixed-size ring buffer. It never
// allocates after construction, but a branch that falls more than the
// buffer's capacity behind loses the oldest frames:
//
//	fork := signal.NewFork(sig, ring.NewBoundedSize[frame.Stereo](512))
//	fork.Borrow(func(a, b *signal.Branch[frame.Stereo]) {
//	    ...
//	})
//
// Borrow hands out branches valid only for the duration of the callback.
// Split hands them out for good.
//
// # Rate conversion
//
// A Converter resamples a signal through an interp.Interpolator:
//
//	src, _ := signal.FromSource[frame.Stereo](decoded)
//	a, b := src.Next(), src.Next()
//	conv := signal.FromHzToHz(src, interp.NewLinear(a, b), 44100, 8000)
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Bus and Fork detect a
// consumer being pulled while another pull on the same bus or fork is in
// progress, which can only happen through reentrancy, and panic.
package signal
