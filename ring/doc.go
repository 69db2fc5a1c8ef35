// SPDX-License-Identifier: EPL-2.0

// Package ring provides the circular buffers the rest of the module is built on.
//
// Two ring buffers are offered:
//   - Fixed keeps a constant length. Every Push evicts the oldest element.
//   - Bounded holds anywhere between 0 and its capacity elements and supports
//     Push/Pop as well as bulk Extend, Read and Copy.
//
// # Storage
//
// Both buffers are created around any Storage, a value that lends a contiguous
// view of N elements. Buffer is the provided implementation:
//
//	// Owned storage.
//	fixed := ring.FixedFrom(ring.Alloc[float32](512))
//
//	// Borrowed storage: the ring buffer aliases the caller's array.
//	var backing [64][2]float32
//	bounded := ring.NewBounded(backing[:])
//
// The physical length of the storage never changes. Logical positions are
// mapped onto it modulo its length.
//
// # Fixed
//
//	rb := ring.NewFixed([]int{0, 1, 2, 3})
//	rb.Push(4) // returns 0
//	rb.Get(0)  // 1
//
// # Bounded
//
//	rb := ring.NewBoundedSize[int](3)
//	rb.Push(1)
//	rb.Push(2)
//	v, ok := rb.Pop() // 1, true
//
// Bulk transfers have a fallible form returning an error and a panicking form
// for callers that already checked the sizes:
//
//	if err := rb.TryExtend(samples); err != nil {
//	    // errors.Is(err, ring.ErrInsufficientSpace)
//	}
//
// # Data loss
//
// Pushing onto a full buffer overwrites the oldest element. This is the only
// way either buffer silently discards data.
//
// # Errors and panics
//
// Conditions a correct caller can always avoid (empty storage, invalid raw
// parts, indexing outside the logical range of a Bounded buffer) panic.
// Capacity mismatches in bulk operations return ErrInsufficientSpace or
// ErrInsufficientData.
//
// None of the types in this package are safe for concurrent use.
package ring
