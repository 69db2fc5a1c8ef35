// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedEncoding  = errors.New("only PCM WAV is supported")
	ErrUnsupportedBitDepth  = errors.New("only 8, 16, 24 and 32-bit PCM supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrInvalidChannels      = errors.New("channel count must be at least 1")
	ErrPartialFrame         = errors.New("sample count must be a multiple of channels")
)
