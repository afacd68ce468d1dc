// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: synthetic
// sources that satisfy audio.Source and builders for mixer blocks.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/mixbus/signal"
)

// Waveform returns the value of frame f on channel ch.
type Waveform func(f, ch int) float32

// Source generates a fixed number of frames from a Waveform. It satisfies
// audio.Source without importing it, so packages under test can use it.
type Source struct {
	rate   int
	chans  int
	frames int
	pos    int
	wave   Waveform
	closed bool
}

// NewSource creates a source of frames frames per channel.
func NewSource(rate, chans, frames int, wave Waveform) *Source {
	return &Source{rate: rate, chans: chans, frames: frames, wave: wave}
}

// NewConstantSource generates value on every channel.
func NewConstantSource(rate, chans, frames int, value float32) *Source {
	return NewSource(rate, chans, frames, func(int, int) float32 { return value })
}

// NewSineSource generates a sine tone at freq Hz on every channel.
func NewSineSource(rate, chans, frames int, freq float64) *Source {
	return NewSource(rate, chans, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(rate)))
	})
}

// NewCountingSource emits frame index f scaled by step on channel 0 and the
// same value negated on channel 1 and above. Useful to follow samples through
// a pipeline.
func NewCountingSource(rate, chans, frames int, step float32) *Source {
	return NewSource(rate, chans, frames, func(f, ch int) float32 {
		v := float32(f) * step
		if ch > 0 {
			return -v
		}
		return v
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.chans }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Rewind restarts generation from frame zero.
func (s *Source) Rewind() { s.pos = 0 }

// ReadSamples writes interleaved frames into dst, returning io.EOF together
// with the last frames.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.chans, s.frames-s.pos)
	for f := range n {
		for ch := range s.chans {
			dst[f*s.chans+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.chans, io.EOF
	}
	return n * s.chans, nil
}

// Constant returns a block of the given shape filled with v.
func Constant(channels, length int, v signal.Sample) signal.Signal {
	s := signal.NewSignal(channels, length)
	for c := range channels {
		for i := range length {
			_ = s.Set(c, i, v)
		}
	}
	return s
}

// Ramp returns a block where sample i of channel c is step*(i+1) + c.
func Ramp(channels, length int, step signal.Sample) signal.Signal {
	s := signal.NewSignal(channels, length)
	for c := range channels {
		for i := range length {
			_ = s.Set(c, i, step*signal.Sample(i+1)+signal.Sample(c))
		}
	}
	return s
}
