// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrChannelMismatch indicates the frame type does not have as many
	// channels as the audio source.
	ErrChannelMismatch = errors.New("signal: frame channels do not match source")
)
