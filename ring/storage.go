// SPDX-License-Identifier: EPL-2.0

package ring

// Storage lends a contiguous view of a fixed number of elements.
//
// The view returned by Slice must keep the same length and backing array for
// as long as a ring buffer uses it.
type Storage[T any] interface {
	Slice() []T
}

// Buffer is a slice used as ring buffer storage.
//
// Converting an existing slice (ring.Buffer[T](s)) borrows it: the ring buffer
// reads and writes the caller's memory directly.
type Buffer[T any] []T

// Slice returns b itself.
func (b Buffer[T]) Slice() []T { return b }

// Alloc returns owned, zeroed storage for n elements.
func Alloc[T any](n int) Buffer[T] {
	return make(Buffer[T], n)
}
