// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"errors"
	"io"
)

var errNegativeOffset = errors.New("audiotest: negative offset")

// WriteSeeker is an in-memory io.WriteSeeker, for encoders that patch
// headers after writing the payload.
type WriteSeeker struct {
	buf []byte
	pos int
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	if end := w.pos + len(p); end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(w.pos) + offset
	case io.SeekEnd:
		abs = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}
	w.pos = int(abs)
	return abs, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.buf }

// Reader returns a reader over the written bytes.
func (w *WriteSeeker) Reader() *bytes.Reader { return bytes.NewReader(w.buf) }
