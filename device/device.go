// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/mixbus/audio"
	"github.com/ik5/mixbus/mixer"
	"github.com/ik5/mixbus/signal"
)

// Device consumes mixed blocks.
type Device interface {
	// QueuedSamples reports how many frames per channel are still waiting
	// to be played or written.
	QueuedSamples() int
	// Queue appends a block to the device.
	Queue(block signal.Signal) error
}

// Depositor accepts a producer's block for one channel. *mixer.Mixer
// implements it.
type Depositor interface {
	DepositSignal(key mixer.Key, sig signal.Signal) error
}

// Producer deposits at most one block per call. Returning io.EOF retires
// the producer; any other error aborts the current block.
type Producer interface {
	Produce(d Depositor) error
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc func(d Depositor) error

func (f ProducerFunc) Produce(d Depositor) error { return f(d) }

// SourceProducer feeds the blocks of an audio.BlockReader into one channel.
type SourceProducer struct {
	br   *audio.BlockReader
	key  mixer.Key
	gain float64
}

// NewSourceProducer deposits every block of br into key, scaled by gain.
func NewSourceProducer(key mixer.Key, br *audio.BlockReader, gain float64) *SourceProducer {
	return &SourceProducer{br: br, key: key, gain: gain}
}

func (p *SourceProducer) Key() mixer.Key { return p.key }

func (p *SourceProducer) Produce(d Depositor) error {
	block, err := p.br.ReadBlock()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("channel %d: %w", p.key, err)
	}
	if p.gain != 1 {
		block.ScaleInPlace(p.gain)
	}
	return d.DepositSignal(p.key, block)
}

// Close closes the underlying source.
func (p *SourceProducer) Close() error {
	return p.br.Close()
}
