// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/mixbus/internal/audiotest"
	"github.com/ik5/mixbus/signal"
)

var stereo4 = Config{ChunkSize: 4, SampleRate: 48000, Channels: 2}

func newTestMixer(t *testing.T, cfg Config) *Mixer {
	t.Helper()

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero chunk", Config{ChunkSize: 0, SampleRate: 48000, Channels: 2}},
		{"zero rate", Config{ChunkSize: 64, SampleRate: 0, Channels: 2}},
		{"zero channels", Config{ChunkSize: 64, SampleRate: 48000, Channels: 0}},
		{"negative chunk", Config{ChunkSize: -1, SampleRate: 48000, Channels: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New(tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMixer_Accessors(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, Config{ChunkSize: 256, SampleRate: 44100, Channels: 6})
	if m.ChunkSize() != 256 || m.SampleRate() != 44100 || m.ChannelCount() != 6 {
		t.Errorf("accessors = %d/%d/%d", m.ChunkSize(), m.SampleRate(), m.ChannelCount())
	}
}

func TestGetOrCreateChannel_Defaults(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)
	if _, ok := m.Channel(7); ok {
		t.Fatal("Channel(7) exists before creation")
	}

	ch := m.GetOrCreateChannel(7)
	if ch.Gain != 1 {
		t.Errorf("new channel gain = %v, want 1", ch.Gain)
	}
	if len(ch.Inputs()) != 0 {
		t.Errorf("new channel inputs = %v, want none", ch.Inputs())
	}

	ch.SetGain(0.25)
	if again := m.GetOrCreateChannel(7); again != ch || again.Gain != 0.25 {
		t.Error("GetOrCreateChannel() did not return the existing channel")
	}
}

func TestChannel_ReadOnlyLookupNeverCreates(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)
	m.Channel(3)
	m.Channel(3)

	if keys := m.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v after read-only lookups", keys)
	}
}

func TestConnect_CreatesBothChannels(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)
	m.Connect(0, 9)
	m.Connect(0, 2)
	m.Connect(0, 2)

	if keys := m.Keys(); !slices.Equal(keys, []Key{0, 2, 9}) {
		t.Errorf("Keys() = %v", keys)
	}
	info, ok := m.Channel(0)
	if !ok {
		t.Fatal("Channel(0) missing")
	}
	if !slices.Equal(info.Inputs, []Key{2, 9}) {
		t.Errorf("inputs = %v, want [2 9]", info.Inputs)
	}

	m.Disconnect(0, 9)
	m.Disconnect(42, 1)
	info, _ = m.Channel(0)
	if !slices.Equal(info.Inputs, []Key{2}) {
		t.Errorf("inputs after Disconnect = %v, want [2]", info.Inputs)
	}
}

func TestDepositSignal_ShapeMismatch(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)

	bad := []signal.Signal{
		signal.NewSignal(1, 4),
		signal.NewSignal(2, 3),
		signal.NewSignal(2, 8),
		{},
	}
	for _, sig := range bad {
		if err := m.DepositSignal(1, sig); !errors.Is(err, signal.ErrShapeMismatch) {
			t.Errorf("DepositSignal(%v) error = %v, want ErrShapeMismatch", sig.Shape(), err)
		}
	}
	if m.Deposited(1) {
		t.Error("rejected deposit was stored")
	}
}

func TestDepositSignal_CopiesCallerSignal(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)
	sig := audiotest.Constant(2, 4, 1)
	if err := m.DepositSignal(1, sig); err != nil {
		t.Fatal(err)
	}
	_ = sig.Set(0, 0, 99)

	out, err := m.EvaluateChannel(1)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.At(0, 0); v != 1 {
		t.Errorf("deposit aliases caller storage: %v", v)
	}
}

func TestDepositSignal_AccumulatesWithinBlock(t *testing.T) {
	t.Parallel()

	a := audiotest.Ramp(2, 4, 0.5)
	b := audiotest.Constant(2, 4, 0.25)

	twice := newTestMixer(t, stereo4)
	if err := twice.DepositSignal(3, a); err != nil {
		t.Fatal(err)
	}
	if err := twice.DepositSignal(3, b); err != nil {
		t.Fatal(err)
	}

	once := newTestMixer(t, stereo4)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if err := once.DepositSignal(3, sum); err != nil {
		t.Fatal(err)
	}

	got, _ := twice.EvaluateChannel(3)
	want, _ := once.EvaluateChannel(3)
	if !got.Equal(want) {
		t.Error("two deposits differ from one deposit of their sum")
	}
}

func TestResetBlock_KeepsTopology(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, stereo4)
	m.Connect(0, 1)
	m.SetGain(0, 0.5)
	if err := m.DepositSignal(1, audiotest.Constant(2, 4, 1)); err != nil {
		t.Fatal(err)
	}

	m.ResetBlock()

	if m.Deposited(1) {
		t.Error("deposit survived ResetBlock")
	}
	info, ok := m.Channel(0)
	if !ok || info.Gain != 0.5 || !slices.Equal(info.Inputs, []Key{1}) {
		t.Errorf("topology after ResetBlock = %+v, %v", info, ok)
	}

	out, err := m.EvaluateChannel(0)
	if err != nil {
		t.Fatal(err)
	}
	if out.IsPresent() {
		t.Error("EvaluateChannel() present after ResetBlock with no deposits")
	}
}

func TestReconfigure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	m, err := New(stereo4, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	m.Connect(0, 1)
	if err := m.DepositSignal(1, audiotest.Constant(2, 4, 1)); err != nil {
		t.Fatal(err)
	}

	next := Config{ChunkSize: 8, SampleRate: 44100, Channels: 1}
	if err := m.Reconfigure(next); err != nil {
		t.Fatal(err)
	}

	if m.Config() != next {
		t.Errorf("Config() = %+v, want %+v", m.Config(), next)
	}
	if m.Deposited(1) {
		t.Error("deposit survived Reconfigure")
	}
	if info, ok := m.Channel(0); !ok || !slices.Equal(info.Inputs, []Key{1}) {
		t.Error("topology lost on Reconfigure")
	}
	if !strings.Contains(logs.String(), "channel count changed") {
		t.Errorf("missing channel count warning, logs: %q", logs.String())
	}

	if err := m.DepositSignal(1, audiotest.Constant(2, 4, 1)); !errors.Is(err, signal.ErrShapeMismatch) {
		t.Errorf("old-shape deposit error = %v, want ErrShapeMismatch", err)
	}
	if err := m.DepositSignal(1, audiotest.Constant(1, 8, 1)); err != nil {
		t.Errorf("new-shape deposit error = %v", err)
	}

	if err := m.Reconfigure(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Reconfigure(zero) error = %v, want ErrInvalidConfig", err)
	}
	if m.Config() != next {
		t.Error("invalid Reconfigure changed the configuration")
	}
}
