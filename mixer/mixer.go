// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/ik5/mixbus/signal"
)

// Option configures a Mixer.
type Option interface {
	apply(*Mixer)
}

type loggerOption struct {
	logger *slog.Logger
}

func (o loggerOption) apply(m *Mixer) {
	if o.logger != nil {
		m.logger = o.logger
	}
}

// WithLogger sets the logger used for debug and warning records. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return loggerOption{logger: l}
}

// Mixer routes and sums multi-channel blocks through a graph of channels.
//
// Topology (gains and inputs) persists across blocks; deposits are cleared by
// ResetBlock. A Mixer does no locking: all calls on one instance must come
// from a single goroutine or be serialized by the caller.
type Mixer struct {
	cfg      Config
	channels map[Key]*Channel
	deposits map[Key]signal.Signal
	logger   *slog.Logger
}

// New creates a mixer producing blocks of the shape described by cfg.
func New(cfg Config, opts ...Option) (*Mixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Mixer{
		cfg:      cfg,
		channels: make(map[Key]*Channel),
		deposits: make(map[Key]signal.Signal),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt.apply(m)
	}
	return m, nil
}

func (m *Mixer) Config() Config    { return m.cfg }
func (m *Mixer) ChunkSize() int    { return m.cfg.ChunkSize }
func (m *Mixer) SampleRate() int   { return m.cfg.SampleRate }
func (m *Mixer) ChannelCount() int { return m.cfg.Channels }

// GetOrCreateChannel returns the mutable state of key, creating it with unit
// gain and no inputs on first reference. It is the only way channels are
// created.
func (m *Mixer) GetOrCreateChannel(key Key) *Channel {
	ch, ok := m.channels[key]
	if !ok {
		ch = newChannel()
		m.channels[key] = ch
	}
	return ch
}

// Channel returns a snapshot of key without creating it.
func (m *Mixer) Channel(key Key) (ChannelInfo, bool) {
	ch, ok := m.channels[key]
	if !ok {
		return ChannelInfo{}, false
	}
	return ch.info(key), true
}

// Keys returns every created channel key in ascending order.
func (m *Mixer) Keys() []Key {
	return slices.Sorted(maps.Keys(m.channels))
}

// SetGain sets the gain of key, creating the channel if needed.
func (m *Mixer) SetGain(key Key, gain float64) {
	m.GetOrCreateChannel(key).SetGain(gain)
}

// Connect routes src into dst, creating both channels if needed.
func (m *Mixer) Connect(dst, src Key) {
	m.GetOrCreateChannel(src)
	m.GetOrCreateChannel(dst).AddInput(src)
}

// Disconnect removes the src input from dst. Unknown channels are ignored.
func (m *Mixer) Disconnect(dst, src Key) {
	if ch, ok := m.channels[dst]; ok {
		ch.RemoveInput(src)
	}
}

// DepositSignal adds sig to the content key receives directly during the
// current block. Several producers may deposit into one key; their signals
// are summed. sig is copied, the caller keeps ownership.
func (m *Mixer) DepositSignal(key Key, sig signal.Signal) error {
	if err := sig.CheckShape(m.cfg.Shape()); err != nil {
		return fmt.Errorf("mixer: deposit into channel %d: %w", key, err)
	}

	existing, ok := m.deposits[key]
	if !ok {
		m.deposits[key] = sig.Clone()
	} else if err := existing.AddInPlace(sig); err != nil {
		return fmt.Errorf("mixer: deposit into channel %d: %w", key, err)
	}

	m.logger.Debug("deposit", "channel", key, "peak", sig.Peak(), "accumulated", ok)
	return nil
}

// Deposited reports whether key received a deposit during the current block.
func (m *Mixer) Deposited(key Key) bool {
	_, ok := m.deposits[key]
	return ok
}

// ResetBlock drops every deposit. Topology is left untouched.
func (m *Mixer) ResetBlock() {
	clear(m.deposits)
}

// Reconfigure resets the current block and switches to cfg. Channel topology
// is kept, so gains and inputs carry over to the new shape.
func (m *Mixer) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.ResetBlock()
	if cfg.Channels != m.cfg.Channels && len(m.channels) > 0 {
		m.logger.Warn("channel count changed with live topology",
			"old_channels", m.cfg.Channels,
			"new_channels", cfg.Channels,
			"topology_channels", len(m.channels),
		)
	}
	m.cfg = cfg
	return nil
}
