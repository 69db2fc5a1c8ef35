// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("no decoder registered for format")
)

// UnknownFormatError is returned by Registry.Decode for a format without a
// decoder. It matches ErrUnknownFormat with errors.Is.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Unwrap() error {
	return ErrUnknownFormat
}
