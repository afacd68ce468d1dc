// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"

	"github.com/ik5/mixbus/signal"
)

// Config is the shape every block passed to or produced by a Mixer matches.
type Config struct {
	// ChunkSize is the number of samples per channel in one block.
	ChunkSize int
	// SampleRate in Hz.
	SampleRate int
	// Channels is the audio channel count of every block (1=mono, 2=stereo).
	Channels int
}

// Validate rejects configurations that cannot describe a block.
func (c Config) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk size %d", ErrInvalidConfig, c.ChunkSize)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.Channels <= 0:
		return fmt.Errorf("%w: channel count %d", ErrInvalidConfig, c.Channels)
	}
	return nil
}

// Shape returns the block shape described by c.
func (c Config) Shape() signal.Shape {
	return signal.Shape{Channels: c.Channels, Length: c.ChunkSize}
}
