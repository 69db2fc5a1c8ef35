// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/ik5/audbus/ring"

const defaultQueueCapacity = 16

// BusOption configures a Bus.
type BusOption func(*busConfig)

type busConfig struct {
	queueCapacity int
}

// WithQueueCapacity sets the initial capacity, in frames, of the queue
// holding frames not yet seen by every output. The queue still grows past
// it when outputs drift apart. Values below 1 are ignored.
func WithQueueCapacity(n int) BusOption {
	return func(c *busConfig) {
		if n > 0 {
			c.queueCapacity = n
		}
	}
}

// BusStats is a snapshot of a Bus.
type BusStats struct {
	// Outputs is the number of open outputs.
	Outputs int
	// Buffered is the number of frames held for outputs that lag behind.
	Buffered int
	// Produced is the number of frames pulled from the wrapped signal.
	Produced uint64
}

// Bus shares one signal between any number of outputs.
//
// Each output sees every frame produced after it was created, at its own
// pace. The wrapped signal is pulled once per frame no matter how many
// outputs read it. Frames are queued until every open output has read them,
// so an output that never reads, and is never closed, makes the queue grow
// without bound.
type Bus[F any] struct {
	node *busNode[F]
}

// Output is one consumer of a Bus. It implements Signal.
//
// Close an output that is no longer read, otherwise the bus keeps every frame
// produced from then on.
type Output[F any] struct {
	node   *busNode[F]
	key    uint64
	closed bool
}

type busNode[F any] struct {
	signal     Signal[F]
	queue      *ring.Bounded[F]
	framesRead map[uint64]int
	nextKey    uint64
	produced   uint64
	busy       bool
}

// NewBus creates a Bus around sig with no outputs.
func NewBus[F any](sig Signal[F], opts ...BusOption) *Bus[F] {
	cfg := busConfig{queueCapacity: defaultQueueCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bus[F]{node: &busNode[F]{
		signal:     sig,
		queue:      ring.NewBoundedSize[F](cfg.queueCapacity),
		framesRead: make(map[uint64]int),
	}}
}

// Send creates a new output. Its first frame is the next one any output
// pulls from the wrapped signal; frames produced earlier are never seen.
func (b *Bus[F]) Send() *Output[F] {
	n := b.node
	n.enter()
	defer n.leave()

	key := n.nextKey
	n.nextKey++
	n.framesRead[key] = n.queue.Len()
	return &Output[F]{node: n, key: key}
}

// Stats returns a snapshot of the bus.
func (b *Bus[F]) Stats() BusStats {
	n := b.node
	n.enter()
	defer n.leave()

	return BusStats{
		Outputs:  len(n.framesRead),
		Buffered: n.queue.Len(),
		Produced: n.produced,
	}
}

func (n *busNode[F]) enter() {
	if n.busy {
		panic("signal: reentrant use of a Bus")
	}
	n.busy = true
}

func (n *busNode[F]) leave() {
	n.busy = false
}

// push appends f to the queue, doubling the queue when it is full.
func (n *busNode[F]) push(f F) {
	if n.queue.IsFull() {
		grown := ring.NewBoundedSize[F](2 * n.queue.MaxLen())
		n.queue.Copy(grown)
		n.queue = grown
	}
	n.queue.Push(f)
}

// discard drops m frames from the front of the queue.
func (n *busNode[F]) discard(m int) {
	for range m {
		n.queue.Pop()
	}
}

func (n *busNode[F]) nextFrame(key uint64) F {
	read := n.framesRead[key]

	var f F
	if read < n.queue.Len() {
		f = n.queue.At(read)
	} else {
		f = n.signal.Next()
		n.produced++
		n.push(f)
	}

	// When no other output still needs the frame at read, it leaves the
	// queue and every index shifts down by one.
	slowest := true
	for k, r := range n.framesRead {
		if k != key && r <= read {
			slowest = false
			break
		}
	}

	if slowest {
		n.discard(1)
		for k := range n.framesRead {
			if k != key {
				n.framesRead[k]--
			}
		}
		return f
	}
	n.framesRead[key] = read + 1
	return f
}

func (n *busNode[F]) drop(key uint64) {
	delete(n.framesRead, key)

	least := n.queue.Len()
	for _, r := range n.framesRead {
		least = min(least, r)
	}
	if least == 0 {
		return
	}
	for k := range n.framesRead {
		n.framesRead[k] -= least
	}
	n.discard(least)
}

// Next returns the next frame for this output, pulling the wrapped signal
// only when no other output has done so yet.
//
// Panics if the output is closed.
func (o *Output[F]) Next() F {
	if o.closed {
		panic("signal: Next on a closed bus Output")
	}
	o.node.enter()
	defer o.node.leave()

	return o.node.nextFrame(o.key)
}

// PendingFrames returns how many frames other outputs have already pulled
// that this output has not read yet. It is 0 for a closed output.
func (o *Output[F]) PendingFrames() int {
	if o.closed {
		return 0
	}
	o.node.enter()
	defer o.node.leave()

	return o.node.queue.Len() - o.node.framesRead[o.key]
}

// IsExhausted reports whether this output has no pending frames and the
// wrapped signal is exhausted. A closed output is always exhausted.
func (o *Output[F]) IsExhausted() bool {
	if o.closed {
		return true
	}
	o.node.enter()
	defer o.node.leave()

	n := o.node
	return n.queue.Len() == n.framesRead[o.key] && n.signal.IsExhausted()
}

// Close detaches the output from the bus and releases the frames only it
// was still waiting for. Closing twice is a no-op.
func (o *Output[F]) Close() {
	if o.closed {
		return
	}
	o.node.enter()
	defer o.node.leave()

	o.closed = true
	o.node.drop(o.key)
}
