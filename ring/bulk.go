// SPDX-License-Identifier: EPL-2.0

package ring

import "fmt"

// free returns the spans of the first n free slots after the back element.
func (b *Bounded[T]) free(n int) ([]T, []T) {
	return b.spans(b.wrap(b.start+b.len), n)
}

// TryExtend appends every element of src at the back, in order.
//
// It returns an error wrapping ErrInsufficientSpace, and leaves the buffer
// untouched, when len(src) > Remaining().
func (b *Bounded[T]) TryExtend(src []T) error {
	if len(src) > b.Remaining() {
		return fmt.Errorf("%w: extend by %d, %d free", ErrInsufficientSpace, len(src), b.Remaining())
	}
	head, tail := b.free(len(src))
	n := copy(head, src)
	copy(tail, src[n:])
	b.len += len(src)
	return nil
}

// Extend is TryExtend that panics on error.
func (b *Bounded[T]) Extend(src []T) {
	if err := b.TryExtend(src); err != nil {
		panic(err)
	}
}

// TryRead pops the first len(dst) elements into dst, in order.
//
// It returns an error wrapping ErrInsufficientData, and leaves the buffer
// untouched, when len(dst) > Len().
func (b *Bounded[T]) TryRead(dst []T) error {
	if len(dst) > b.len {
		return fmt.Errorf("%w: read %d, %d held", ErrInsufficientData, len(dst), b.len)
	}
	if len(dst) == 0 {
		return nil
	}
	head, tail := b.spans(b.start, len(dst))
	n := copy(dst, head)
	copy(dst[n:], tail)
	b.start = b.wrap(b.start + len(dst))
	b.len -= len(dst)
	return nil
}

// Read is TryRead that panics on error.
func (b *Bounded[T]) Read(dst []T) {
	if err := b.TryRead(dst); err != nil {
		panic(err)
	}
}

// TryCopy moves every element of b, in order, onto the back of other and
// leaves b empty.
//
// It returns an error wrapping ErrInsufficientSpace, and leaves both buffers
// untouched, when b.Len() > other.Remaining(). Copying a buffer into itself
// panics.
func (b *Bounded[T]) TryCopy(other *Bounded[T]) error {
	if b == other {
		panic("ring: Bounded copy into itself")
	}
	n := b.len
	if n > other.Remaining() {
		return fmt.Errorf("%w: copy %d, %d free", ErrInsufficientSpace, n, other.Remaining())
	}
	if n == 0 {
		return nil
	}

	// The occupied run of b and the free run of other are each either one
	// contiguous span or split in two at the end of the storage.
	src0, src1 := b.spans(b.start, n)
	dst0, dst1 := other.free(n)
	srcSplit, dstSplit := len(src1) > 0, len(dst1) > 0

	switch {
	case !srcSplit && !dstSplit:
		copy(dst0, src0)

	case !srcSplit && dstSplit:
		k := copy(dst0, src0)
		copy(dst1, src0[k:])

	case srcSplit && !dstSplit:
		k := copy(dst0, src0)
		copy(dst0[k:], src1)

	default:
		// Both runs are split. The shorter leading span bounds the first copy.
		switch {
		case len(src0) < len(dst0):
			k := copy(dst0, src0)
			m := copy(dst0[k:], src1)
			copy(dst1, src1[m:])
		case len(src0) > len(dst0):
			k := copy(dst0, src0)
			m := copy(dst1, src0[k:])
			copy(dst1[m:], src1)
		default:
			copy(dst0, src0)
			copy(dst1, src1)
		}
	}

	other.len += n
	b.len = 0
	return nil
}

// Copy is TryCopy that panics on error.
func (b *Bounded[T]) Copy(other *Bounded[T]) {
	if err := b.TryCopy(other); err != nil {
		panic(err)
	}
}
