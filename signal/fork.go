// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/ik5/audbus/ring"

type side uint8

const (
	sideA side = iota
	sideB
)

func (s side) other() side { return 1 - s }

// Fork shares one signal between exactly two branches through a single
// bounded ring buffer.
//
// Frames pulled by one branch are queued for the other. If one branch runs
// more than MaxLen() frames ahead, the oldest queued frames are overwritten
// and the lagging branch never sees them. Size the ring buffer for the
// largest expected skew.
type Fork[F any] struct {
	shared    *forkShared[F]
	borrowing bool
	split     bool
}

type forkShared[F any] struct {
	signal  Signal[F]
	rb      *ring.Bounded[F]
	pending side
	epoch   uint64
	busy    bool
}

// Branch is one side of a Fork. It implements Signal.
type Branch[F any] struct {
	shared *forkShared[F]
	side   side
	// scoped branches are only valid while epoch matches shared.epoch.
	scoped bool
	epoch  uint64
}

// NewFork creates a Fork around sig, queueing frames in rb.
//
// Panics if rb is nil or not empty.
func NewFork[F any](sig Signal[F], rb *ring.Bounded[F]) *Fork[F] {
	if rb == nil || !rb.IsEmpty() {
		panic("signal: Fork ring buffer must be empty")
	}
	return &Fork[F]{shared: &forkShared[F]{signal: sig, rb: rb, pending: sideB}}
}

// Borrow calls fn with both branches. The branches must not be used after fn
// returns; doing so panics. Borrow may be called any number of times until
// the fork is split.
func (f *Fork[F]) Borrow(fn func(a, b *Branch[F])) {
	if f.split {
		panic("signal: Borrow on a Fork that was split")
	}
	if f.borrowing {
		panic("signal: nested Borrow on a Fork")
	}
	f.borrowing = true
	s := f.shared
	defer func() {
		s.epoch++
		f.borrowing = false
	}()

	fn(
		&Branch[F]{shared: s, side: sideA, scoped: true, epoch: s.epoch},
		&Branch[F]{shared: s, side: sideB, scoped: true, epoch: s.epoch},
	)
}

// Split hands out both branches for good. The fork cannot be used again.
func (f *Fork[F]) Split() (a, b *Branch[F]) {
	if f.split {
		panic("signal: Fork split twice")
	}
	if f.borrowing {
		panic("signal: Split inside Borrow")
	}
	f.split = true
	return &Branch[F]{shared: f.shared, side: sideA}, &Branch[F]{shared: f.shared, side: sideB}
}

func (b *Branch[F]) enter() *forkShared[F] {
	s := b.shared
	if b.scoped && b.epoch != s.epoch {
		panic("signal: Fork branch used after Borrow returned")
	}
	if s.busy {
		panic("signal: reentrant use of a Fork")
	}
	s.busy = true
	return s
}

func (s *forkShared[F]) leave() {
	s.busy = false
}

// Next returns the oldest frame queued for this branch, or pulls a new one
// from the signal and queues it for the other branch.
func (b *Branch[F]) Next() F {
	s := b.enter()
	defer s.leave()

	if s.pending == b.side {
		if f, ok := s.rb.Pop(); ok {
			return f
		}
	}
	f := s.signal.Next()
	s.rb.Push(f)
	s.pending = b.side.other()
	return f
}

// PendingFrames returns how many frames are queued for this branch.
func (b *Branch[F]) PendingFrames() int {
	s := b.enter()
	defer s.leave()

	if s.pending == b.side {
		return s.rb.Len()
	}
	return 0
}

// IsExhausted reports whether nothing is queued for this branch and the
// signal is exhausted.
func (b *Branch[F]) IsExhausted() bool {
	s := b.enter()
	defer s.leave()

	return (s.pending != b.side || s.rb.IsEmpty()) && s.signal.IsExhausted()
}
