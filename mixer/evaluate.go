// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"

	"github.com/ik5/mixbus/signal"
)

// evaluation holds the state of one EvaluateChannel call.
type evaluation struct {
	m          *Mixer
	cache      map[Key]signal.Signal
	inProgress map[Key]struct{}
	visits     int
}

// EvaluateChannel computes the block signal of key: its deposit plus the
// evaluated signal of every input, multiplied by its gain.
//
// Every channel is evaluated at most once per call even when reached through
// several paths. When the walk returns to a channel that is still being
// evaluated (a cycle), that occurrence contributes nothing. A channel that
// received no deposit and no input content yields an absent signal.
func (m *Mixer) EvaluateChannel(key Key) (signal.Signal, error) {
	ev := &evaluation{
		m:          m,
		cache:      make(map[Key]signal.Signal),
		inProgress: make(map[Key]struct{}),
	}

	if err := ev.resolve(key); err != nil {
		return signal.Signal{}, err
	}

	out := ev.cache[key]
	m.logger.Debug("evaluate",
		"channel", key,
		"visited", ev.visits,
		"present", out.IsPresent(),
		"peak", out.Peak(),
	)
	return out, nil
}

func (ev *evaluation) resolve(key Key) error {
	if _, ok := ev.cache[key]; ok {
		return nil
	}
	if _, ok := ev.inProgress[key]; ok {
		return nil
	}

	ev.inProgress[key] = struct{}{}
	ev.visits++

	var acc signal.Signal
	if dep, ok := ev.m.deposits[key]; ok {
		acc = dep.Clone()
	}

	gain := 1.0
	if ch, ok := ev.m.channels[key]; ok {
		gain = ch.Gain
		for _, in := range ch.Inputs() {
			if err := ev.resolve(in); err != nil {
				return err
			}

			// an input still in progress has no cache entry yet
			contrib, ok := ev.cache[in]
			if !ok || contrib.IsEmpty() {
				continue
			}
			if acc.IsEmpty() {
				acc = contrib.Clone()
				continue
			}
			if err := acc.AddInPlace(contrib); err != nil {
				return fmt.Errorf("mixer: channel %d input %d: %w", key, in, err)
			}
		}
	}

	acc.ScaleInPlace(gain)

	ev.cache[key] = acc
	delete(ev.inProgress, key)
	return nil
}
