// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ik5/mixbus/mixer"
	"github.com/ik5/mixbus/signal"
)

const defaultPollInterval = 2 * time.Millisecond

// PumpOption configures a Pump.
type PumpOption func(*Pump)

// WithLogger sets the logger for block and producer events.
func WithLogger(l *slog.Logger) PumpOption {
	return func(p *Pump) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPollInterval sets how long Run waits when the device is full.
func WithPollInterval(d time.Duration) PumpOption {
	return func(p *Pump) {
		if d > 0 {
			p.poll = d
		}
	}
}

// Pump drives the block cadence between producers, a mixer and a device:
// whenever the device holds less than one chunk, it mixes a new block from
// the master channel and queues it.
type Pump struct {
	mixer     *mixer.Mixer
	master    mixer.Key
	device    Device
	producers []Producer

	logger *slog.Logger
	poll   time.Duration
	blocks int
}

func NewPump(m *mixer.Mixer, master mixer.Key, dev Device, opts ...PumpOption) *Pump {
	p := &Pump{
		mixer:  m,
		master: master,
		device: dev,
		logger: slog.Default(),
		poll:   defaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add registers a producer. It takes part from the next block on.
func (p *Pump) Add(pr Producer) {
	p.producers = append(p.producers, pr)
}

// Live returns the number of producers that have not finished.
func (p *Pump) Live() int { return len(p.producers) }

// Blocks returns the number of blocks queued so far.
func (p *Pump) Blocks() int { return p.blocks }

// Step mixes and queues one block if the device has room for it. It reports
// whether a block was queued.
//
// A channel graph that yields nothing for the master channel queues a
// silent block, except on the step in which the last producer finishes:
// that step queues nothing, so offline renders end on the final source
// block.
func (p *Pump) Step() (bool, error) {
	if p.device.QueuedSamples() >= p.mixer.ChunkSize() {
		return false, nil
	}

	p.mixer.ResetBlock()

	had := len(p.producers)
	live := make([]Producer, 0, had)
	var failed error
	for _, pr := range p.producers {
		err := pr.Produce(p.mixer)
		if errors.Is(err, io.EOF) {
			p.retire(pr)
			continue
		}
		live = append(live, pr)
		if err != nil && failed == nil {
			failed = fmt.Errorf("device: producer: %w", err)
		}
	}
	p.producers = live
	if failed != nil {
		return false, failed
	}
	if had > 0 && len(live) == 0 {
		p.logger.Debug("all producers finished", "blocks", p.blocks)
		return false, nil
	}

	out, err := p.mixer.EvaluateChannel(p.master)
	if err != nil {
		return false, fmt.Errorf("device: evaluate master %d: %w", p.master, err)
	}
	if out.IsEmpty() {
		out = signal.Silence(p.mixer.Config().Shape())
	}

	if err := p.device.Queue(out); err != nil {
		return false, fmt.Errorf("device: queue block: %w", err)
	}
	p.blocks++
	p.logger.Debug("block queued", "block", p.blocks, "live", len(p.producers), "peak", out.Peak())

	return true, nil
}

// Run steps until every producer has finished or ctx is done. While the
// device is full it waits for the poll interval between attempts.
func (p *Pump) Run(ctx context.Context) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for len(p.producers) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		mixed, err := p.Step()
		if err != nil {
			return err
		}
		if mixed || len(p.producers) == 0 {
			continue
		}

		if timer == nil {
			timer = time.NewTimer(p.poll)
		} else {
			timer.Reset(p.poll)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	p.logger.Info("pump finished", "blocks", p.blocks)
	return nil
}

// Drain retires every remaining producer, closing those that hold
// resources.
func (p *Pump) Drain() error {
	var errs []error
	for _, pr := range p.producers {
		if c, ok := pr.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	p.producers = nil
	return errors.Join(errs...)
}

func (p *Pump) retire(pr Producer) {
	if c, ok := pr.(io.Closer); ok {
		if err := c.Close(); err != nil {
			p.logger.Warn("closing finished producer", "error", err)
		}
	}
	p.logger.Debug("producer finished", "block", p.blocks+1)
}
