// SPDX-License-Identifier: EPL-2.0

package ring

import "iter"

// Fixed is a ring buffer with a constant length.
//
// Elements are pushed onto the back and evicted from the front in the same
// operation, so the length never changes. Logical index i maps to the physical
// slot (first+i) % Len().
type Fixed[T any] struct {
	first int
	data  []T
}

// NewFixed creates a Fixed ring buffer around data, which must not be empty.
// data is used in place; the oldest element is data[0].
func NewFixed[T any](data []T) *Fixed[T] {
	return FixedFromRawParts(0, data)
}

// FixedFrom creates a Fixed ring buffer around the view lent by s.
func FixedFrom[T any](s Storage[T]) *Fixed[T] {
	return NewFixed(s.Slice())
}

// FixedFromRawParts creates a Fixed ring buffer whose logical index 0 is the
// physical slot first.
//
// Panics if first is not a valid index of data (which includes empty data).
func FixedFromRawParts[T any](first int, data []T) *Fixed[T] {
	if first < 0 || first >= len(data) {
		panic("ring: Fixed first index out of range of data")
	}
	return &Fixed[T]{first: first, data: data}
}

// FixedFromRawPartsUnchecked is FixedFromRawParts without the range check.
// The caller guarantees 0 <= first < len(data).
func FixedFromRawPartsUnchecked[T any](first int, data []T) *Fixed[T] {
	return &Fixed[T]{first: first, data: data}
}

// RawParts returns the physical index of the first element and the storage.
func (f *Fixed[T]) RawParts() (int, []T) {
	return f.first, f.data
}

// Len returns the fixed length of the buffer.
func (f *Fixed[T]) Len() int {
	return len(f.data)
}

// Push writes item at the back of the buffer and returns the element it
// evicted from the front.
func (f *Fixed[T]) Push(item T) T {
	old := f.data[f.first]
	f.data[f.first] = item
	f.first++
	if f.first == len(f.data) {
		f.first = 0
	}
	return old
}

// index maps logical index i to a physical slot. Negative indices count
// back from the oldest element, so -1 is the newest.
func (f *Fixed[T]) index(i int) int {
	return wrap(f.first+i, len(f.data))
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Get returns the element at logical index i, wrapping i around Len() in
// either direction.
func (f *Fixed[T]) Get(i int) T {
	return f.data[f.index(i)]
}

// Set replaces the element at logical index i, wrapping i around Len().
func (f *Fixed[T]) Set(i int, v T) {
	f.data[f.index(i)] = v
}

// Ref returns a pointer to the element at logical index i, wrapping i around
// Len(). The pointer is valid until the slot is overwritten by Push.
func (f *Fixed[T]) Ref(i int) *T {
	return &f.data[f.index(i)]
}

// SetFirst moves logical index 0 to physical slot i, wrapping i around Len().
// Negative values wrap as well: SetFirst(-1) selects the last slot.
func (f *Fixed[T]) SetFirst(i int) {
	f.first = wrap(i, len(f.data))
}

// Slices returns the two physical spans that, concatenated, hold every element
// from oldest to newest. back is empty when first is 0.
func (f *Fixed[T]) Slices() (front, back []T) {
	return f.data[f.first:], f.data[:f.first]
}

// Fill overwrites every element with v.
func (f *Fixed[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// All yields logical index and element pairs from oldest to newest.
func (f *Fixed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		front, back := f.Slices()
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

// Values yields every element from oldest to newest.
func (f *Fixed[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range f.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Loop yields the elements endlessly, starting over at the oldest element
// after the newest. The consumer must break out of the loop.
func (f *Fixed[T]) Loop() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := f.first; ; i++ {
			if i == len(f.data) {
				i = 0
			}
			if !yield(f.data[i]) {
				return
			}
		}
	}
}
