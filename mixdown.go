// SPDX-License-Identifier: EPL-2.0

package mixbus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/mixbus/audio"
	"github.com/ik5/mixbus/device"
	"github.com/ik5/mixbus/formats/wav"
	"github.com/ik5/mixbus/mixer"
	"github.com/ik5/mixbus/project"
)

// Option configures a mixdown.
type Option func(*options)

type options struct {
	bitDepth int
	logger   *slog.Logger
}

// WithBitDepth sets the sample width of the rendered WAV: 8, 16, 24 or 32.
// The default is 16.
func WithBitDepth(bits int) Option {
	return func(o *options) { o.bitDepth = bits }
}

// WithLogger sets the logger used by the mixer and the pump.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Result summarizes a finished mixdown.
type Result struct {
	Blocks   int
	Frames   int
	Duration time.Duration
}

// Mixdown renders proj into out as a WAV stream. Every track is decoded
// with reg, resampled to the project rate and deposited into its channel
// until the longest track ends.
func Mixdown(ctx context.Context, proj *project.Project, reg *audio.Registry, out io.WriteSeeker, opts ...Option) (Result, error) {
	o := options{bitDepth: 16, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := proj.MixerConfig()
	m, err := mixer.New(cfg, mixer.WithLogger(o.logger))
	if err != nil {
		return Result{}, err
	}
	proj.Apply(m)

	w, err := wav.NewWriter(out, cfg.SampleRate, cfg.Channels, o.bitDepth)
	if err != nil {
		return Result{}, err
	}

	pump := device.NewPump(m, proj.Master, w, device.WithLogger(o.logger))
	defer func() {
		if err := pump.Drain(); err != nil {
			o.logger.Warn("closing tracks", "error", err)
		}
	}()

	for _, t := range proj.Tracks {
		p, err := openTrack(proj, reg, t, cfg)
		if err != nil {
			return Result{}, err
		}
		pump.Add(p)
	}

	o.logger.Info("mixdown started",
		"tracks", len(proj.Tracks), "rate", cfg.SampleRate, "channels", cfg.Channels,
		"chunk", cfg.ChunkSize, "bits", o.bitDepth)

	if err := pump.Run(ctx); err != nil {
		return Result{}, fmt.Errorf("mixdown: %w", err)
	}
	if err := w.Close(); err != nil {
		return Result{}, err
	}

	return Result{
		Blocks:   pump.Blocks(),
		Frames:   w.Frames(),
		Duration: time.Duration(w.Frames()) * time.Second / time.Duration(cfg.SampleRate),
	}, nil
}

// MixdownFile loads the project at projectPath and renders it to outPath
// with the default registry.
func MixdownFile(ctx context.Context, projectPath, outPath string, opts ...Option) (Result, error) {
	proj, err := project.Load(projectPath)
	if err != nil {
		return Result{}, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", outPath, err)
	}

	res, err := Mixdown(ctx, proj, DefaultRegistry(), f, opts...)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", outPath, cerr)
	}
	return res, err
}

// fileSource closes the decoded file together with its source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

func openTrack(proj *project.Project, reg *audio.Registry, t project.Track, cfg mixer.Config) (*device.SourceProducer, error) {
	path := proj.TrackPath(t)

	dec, err := reg.DecoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var s audio.Source = &fileSource{Source: src, f: f}
	if s.SampleRate() != cfg.SampleRate {
		s = audio.NewResampler(s, cfg.SampleRate)
	}

	br, err := audio.NewBlockReader(s, cfg.Channels, cfg.ChunkSize)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("track %s: %w", path, err)
	}

	return device.NewSourceProducer(t.Channel, br, project.TrackGain(t)), nil
}
