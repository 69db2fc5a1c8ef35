// SPDX-License-Identifier: EPL-2.0

package audbus

import "errors"

var (
	ErrInvalidRate         = errors.New("sample rate must be positive")
	ErrInvalidConsumers    = errors.New("consumer count must be at least 1")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)
