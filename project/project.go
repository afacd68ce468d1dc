// SPDX-License-Identifier: EPL-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/ik5/mixbus/mixer"
)

const (
	DefaultSampleRate = 48000
	DefaultChannels   = 2
)

// Project describes a mix: the block format, the bus topology and the
// tracks feeding it.
type Project struct {
	// ChunkSize is the block length in frames. Zero means a quarter of a
	// second at SampleRate.
	ChunkSize  int       `yaml:"chunk_size,omitempty"`
	SampleRate int       `yaml:"sample_rate,omitempty"`
	Channels   int       `yaml:"channels,omitempty"`
	Master     mixer.Key `yaml:"master"`
	Buses      []Bus     `yaml:"buses,omitempty"`
	Tracks     []Track   `yaml:"tracks,omitempty"`

	dir string
}

// Bus is a mixer channel with a gain and the channels summed into it.
type Bus struct {
	Key    mixer.Key   `yaml:"key"`
	Gain   *float64    `yaml:"gain,omitempty"`
	Inputs []mixer.Key `yaml:"inputs,omitempty,flow"`
}

// Track is an audio file deposited into a channel every block.
type Track struct {
	Path    string    `yaml:"path"`
	Channel mixer.Key `yaml:"channel"`
	Gain    *float64  `yaml:"gain,omitempty"`
}

// Load reads and validates the project at path. Relative track paths are
// resolved against the directory of path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// Parse decodes a YAML project, fills defaults and validates it.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.UnmarshalWithOptions(data, &p, yaml.Strict()); err != nil {
		return nil, err
	}
	p.applyDefaults()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Project) applyDefaults() {
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Channels == 0 {
		p.Channels = DefaultChannels
	}
	if p.ChunkSize == 0 {
		p.ChunkSize = p.SampleRate / 4
	}
}

// MixerConfig returns the block format of the project.
func (p *Project) MixerConfig() mixer.Config {
	return mixer.Config{ChunkSize: p.ChunkSize, SampleRate: p.SampleRate, Channels: p.Channels}
}

// Validate checks the block format and that every bus and track entry is
// usable. Feedback loops between buses are allowed.
func (p *Project) Validate() error {
	if err := p.MixerConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	seen := make(map[mixer.Key]bool, len(p.Buses))
	for _, b := range p.Buses {
		if seen[b.Key] {
			return fmt.Errorf("%w: bus %d defined twice", ErrInvalidProject, b.Key)
		}
		seen[b.Key] = true
	}

	for i, t := range p.Tracks {
		if t.Path == "" {
			return fmt.Errorf("%w: track %d has no path", ErrInvalidProject, i)
		}
	}
	return nil
}

// TrackPath resolves the file of t against the project directory.
func (p *Project) TrackPath(t Track) string {
	if filepath.IsAbs(t.Path) || p.dir == "" {
		return t.Path
	}
	return filepath.Join(p.dir, t.Path)
}

// Apply creates the project's channels on m and wires their gains and
// inputs. Existing topology on m is kept.
func (p *Project) Apply(m *mixer.Mixer) {
	m.GetOrCreateChannel(p.Master)
	for _, b := range p.Buses {
		m.GetOrCreateChannel(b.Key)
		m.SetGain(b.Key, gainOr1(b.Gain))
		for _, in := range b.Inputs {
			m.Connect(b.Key, in)
		}
	}
	for _, t := range p.Tracks {
		m.GetOrCreateChannel(t.Channel)
	}
}

// Save writes p as YAML to path.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// TrackGain returns the gain of t, 1 when unset.
func TrackGain(t Track) float64 { return gainOr1(t.Gain) }

func gainOr1(g *float64) float64 {
	if g == nil {
		return 1
	}
	return *g
}
