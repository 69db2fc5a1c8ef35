// SPDX-License-Identifier: EPL-2.0

package ring

import "iter"

// Bounded is a ring buffer holding between 0 and MaxLen() elements.
//
// Elements are pushed onto the back and popped from the front. Logical index i
// (0 <= i < Len()) maps to the physical slot (start+i) % MaxLen().
//
// Elements are copied in and out by value. T should therefore be a value type
// (numbers, arrays, plain structs); slots are overwritten without any cleanup.
type Bounded[T any] struct {
	start int
	len   int
	data  []T
}

// NewBounded creates an empty Bounded ring buffer around data, which must not
// be empty. The capacity is len(data).
func NewBounded[T any](data []T) *Bounded[T] {
	return BoundedFromRawParts(0, 0, data)
}

// NewBoundedSize creates an empty Bounded ring buffer with owned storage for
// maxLen elements.
func NewBoundedSize[T any](maxLen int) *Bounded[T] {
	return NewBounded(Alloc[T](maxLen).Slice())
}

// BoundedFrom creates an empty Bounded ring buffer around the view lent by s.
func BoundedFrom[T any](s Storage[T]) *Bounded[T] {
	return NewBounded(s.Slice())
}

// BoundedFull creates a Bounded ring buffer that treats every element of data
// as valid, oldest first.
func BoundedFull[T any](data []T) *Bounded[T] {
	return BoundedFromRawParts(0, len(data), data)
}

// BoundedFromRawParts creates a Bounded ring buffer from its start index,
// length and storage.
//
// Panics unless start < len(data) and length <= len(data).
func BoundedFromRawParts[T any](start, length int, data []T) *Bounded[T] {
	if start < 0 || start >= len(data) {
		panic("ring: Bounded start index out of range of data")
	}
	if length < 0 || length > len(data) {
		panic("ring: Bounded length exceeds data")
	}
	return &Bounded[T]{start: start, len: length, data: data}
}

// BoundedFromRawPartsUnchecked is BoundedFromRawParts without the range
// checks. The caller guarantees 0 <= start < len(data) and
// 0 <= length <= len(data).
func BoundedFromRawPartsUnchecked[T any](start, length int, data []T) *Bounded[T] {
	return &Bounded[T]{start: start, len: length, data: data}
}

// RawParts returns the physical start index, the length and the storage.
// Slots outside the logical range hold stale values.
func (b *Bounded[T]) RawParts() (start, length int, data []T) {
	return b.start, b.len, b.data
}

// MaxLen returns the capacity of the buffer.
func (b *Bounded[T]) MaxLen() int {
	return len(b.data)
}

// Len returns the number of elements currently held.
func (b *Bounded[T]) Len() int {
	return b.len
}

// Remaining returns how many elements can be pushed before the buffer is full.
func (b *Bounded[T]) Remaining() int {
	return len(b.data) - b.len
}

// IsEmpty reports whether Len() == 0.
func (b *Bounded[T]) IsEmpty() bool {
	return b.len == 0
}

// IsFull reports whether Len() == MaxLen().
func (b *Bounded[T]) IsFull() bool {
	return b.len == len(b.data)
}

// Clear discards every element without touching the storage.
func (b *Bounded[T]) Clear() {
	b.len = 0
}

// wrap maps a physical position in [0, 2*MaxLen()) back into range.
func (b *Bounded[T]) wrap(i int) int {
	if i >= len(b.data) {
		return i - len(b.data)
	}
	return i
}

// spans returns the physical memory covering n consecutive slots starting at
// physical index from. The second span is empty unless the run wraps.
func (b *Bounded[T]) spans(from, n int) ([]T, []T) {
	end := from + n
	if end <= len(b.data) {
		return b.data[from:end], b.data[:0]
	}
	return b.data[from:], b.data[:end-len(b.data)]
}

// Slices returns the two spans that, concatenated, hold the Len() elements in
// order. The second span is empty unless the occupied region wraps past the
// end of the storage.
func (b *Bounded[T]) Slices() (front, back []T) {
	return b.spans(b.start, b.len)
}

// Get returns the element at logical index i, or false if i is not in
// 0..Len().
func (b *Bounded[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.len {
		var zero T
		return zero, false
	}
	return b.data[b.wrap(b.start+i)], true
}

// Set replaces the element at logical index i. It reports false and does
// nothing if i is not in 0..Len().
func (b *Bounded[T]) Set(i int, v T) bool {
	if i < 0 || i >= b.len {
		return false
	}
	b.data[b.wrap(b.start+i)] = v
	return true
}

// At returns the element at logical index i.
//
// Panics if i is not in 0..Len().
func (b *Bounded[T]) At(i int) T {
	v, ok := b.Get(i)
	if !ok {
		panic("ring: Bounded index out of range")
	}
	return v
}

// Push appends elem at the back.
//
// When the buffer is full the front element is overwritten and returned with
// ok set; the length does not change. Otherwise ok is false.
func (b *Bounded[T]) Push(elem T) (evicted T, ok bool) {
	if b.len == len(b.data) {
		evicted = b.data[b.start]
		b.data[b.start] = elem
		b.start = b.wrap(b.start + 1)
		return evicted, true
	}
	b.data[b.wrap(b.start+b.len)] = elem
	b.len++
	return evicted, false
}

// Pop removes and returns the front element, or false when the buffer is
// empty.
func (b *Bounded[T]) Pop() (T, bool) {
	if b.len == 0 {
		var zero T
		return zero, false
	}
	elem := b.data[b.start]
	b.start = b.wrap(b.start + 1)
	b.len--
	return elem, true
}

// Drain pops and yields elements from the front until the buffer is empty.
// Breaking out of the loop leaves the remaining elements in place.
func (b *Bounded[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := b.Pop()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

// All yields logical index and element pairs without removing them.
func (b *Bounded[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		front, back := b.Slices()
		for i, v := range front {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range back {
			if !yield(len(front)+i, v) {
				return
			}
		}
	}
}

// Values yields the elements from front to back without removing them.
func (b *Bounded[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}
