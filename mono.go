// SPDX-License-Identifier: EPL-2.0

package audbus

import (
	"fmt"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/signal"
)

// monoFrames reads src as mono frames, averaging its channels. The returned
// func reports the error that ended the source early, if any.
func monoFrames(src audio.Source) (signal.Signal[frame.Mono], func() error, error) {
	switch n := audio.Channels(src); n {
	case 1:
		return downmix[frame.Mono](src)
	case 2:
		return downmix[frame.Stereo](src)
	case 4:
		return downmix[frame.Quad](src)
	case 6:
		return downmix[frame.Surround51](src)
	case 8:
		return downmix[frame.Surround71](src)
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, n)
	}
}

func downmix[F frame.Frame](src audio.Source) (signal.Signal[frame.Mono], func() error, error) {
	frames, err := signal.FromSource[F](src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	return signal.Mono[F](frames), frames.Err, nil
}
