// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"iter"

	"github.com/ik5/audbus/ring"
)

// Buffered pulls frames from a signal in blocks of the ring buffer's capacity.
//
// The ring buffer is refilled only once it is empty, so the wrapped signal is
// always pulled MaxLen() frames at a time.
type Buffered[F any] struct {
	sig Signal[F]
	rb  *ring.Bounded[F]
}

// NewBuffered wraps sig with rb as its block buffer.
func NewBuffered[F any](sig Signal[F], rb *ring.Bounded[F]) *Buffered[F] {
	return &Buffered[F]{sig: sig, rb: rb}
}

func (b *Buffered[F]) fill() {
	if !b.rb.IsEmpty() {
		return
	}
	for range b.rb.MaxLen() {
		b.rb.Push(b.sig.Next())
	}
}

func (b *Buffered[F]) Next() F {
	b.fill()
	f, _ := b.rb.Pop()
	return f
}

func (b *Buffered[F]) IsExhausted() bool {
	return b.rb.IsEmpty() && b.sig.IsExhausted()
}

// NextFrames yields the frames currently buffered, refilling first if the
// buffer is empty. Frames not consumed stay buffered.
func (b *Buffered[F]) NextFrames() iter.Seq[F] {
	b.fill()
	return b.rb.Drain()
}

// Parts returns the wrapped signal and ring buffer.
func (b *Buffered[F]) Parts() (Signal[F], *ring.Bounded[F]) {
	return b.sig, b.rb
}
