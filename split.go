// SPDX-License-Identifier: EPL-2.0

package audbus

import (
	"fmt"

	"github.com/ik5/audbus/audio"
	"github.com/ik5/audbus/frame"
	"github.com/ik5/audbus/sample"
	"github.com/ik5/audbus/signal"
)

// SplitMono16 renders src as mono 16-bit PCM once per consumer.
//
// The source is read a single time through a signal.Bus; the consumers take
// turns pulling one frame each, so every returned slice holds the same
// samples while the bus only queues frames not yet seen by all of them.
func SplitMono16(src audio.Source, consumers int) ([][]int16, error) {
	if consumers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConsumers, consumers)
	}

	mono, srcErr, err := monoFrames(src)
	if err != nil {
		return nil, err
	}

	bus := signal.NewBus(mono)
	outputs := make([]*signal.Output[frame.Mono], consumers)
	for i := range outputs {
		outputs[i] = bus.Send()
		defer outputs[i].Close()
	}

	res := make([][]int16, consumers)
	for !outputs[0].IsExhausted() {
		for i, out := range outputs {
			res[i] = append(res[i], sample.ToInt16(out.Next()[0]))
		}
	}

	if err := srcErr(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return res, nil
}
