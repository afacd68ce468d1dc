// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"maps"
	"slices"
)

// Key identifies a channel. Keys are assigned by the caller and may be sparse.
type Key = uint32

// Channel is the persistent routing state of one bus: its gain and the set of
// channels it sums from. Channels survive ResetBlock.
type Channel struct {
	Gain   float64
	inputs map[Key]struct{}
}

func newChannel() *Channel {
	return &Channel{
		Gain:   1,
		inputs: make(map[Key]struct{}),
	}
}

func (c *Channel) SetGain(g float64) { c.Gain = g }

// AddInput routes src into c. Adding an existing input is a no-op.
func (c *Channel) AddInput(src Key) { c.inputs[src] = struct{}{} }

func (c *Channel) RemoveInput(src Key) { delete(c.inputs, src) }

func (c *Channel) HasInput(src Key) bool {
	_, ok := c.inputs[src]
	return ok
}

// Inputs returns the input keys in ascending order.
func (c *Channel) Inputs() []Key {
	return slices.Sorted(maps.Keys(c.inputs))
}

// ChannelInfo is a read-only snapshot of a Channel.
type ChannelInfo struct {
	Key    Key
	Gain   float64
	Inputs []Key
}

func (c *Channel) info(key Key) ChannelInfo {
	return ChannelInfo{Key: key, Gain: c.Gain, Inputs: c.Inputs()}
}
