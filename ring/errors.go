// SPDX-License-Identifier: EPL-2.0

package ring

import "errors"

var (
	// ErrInsufficientSpace is returned when a bulk write does not fit in the
	// remaining capacity of the destination buffer.
	ErrInsufficientSpace = errors.New("ring: not enough space in destination")

	// ErrInsufficientData is returned when a bulk read asks for more elements
	// than the buffer holds.
	ErrInsufficientData = errors.New("ring: not enough elements in buffer")
)
