// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/mixbus/utils"
)

// maxEmptyReads bounds how often a source may return (0, nil) in a row.
const maxEmptyReads = 64

// frameReader pulls single interleaved frames out of a Source, reading in
// bulk underneath.
type frameReader struct {
	src      Source
	channels int
	buf      []float32
	off, end int
	eof      bool
}

func newFrameReader(src Source, frames int) *frameReader {
	return &frameReader{
		src:      src,
		channels: src.Channels(),
		buf:      make([]float32, frames*src.Channels()),
	}
}

// next copies the next frame into dst. It returns io.EOF once the source is
// drained.
func (fr *frameReader) next(dst []float32) error {
	for fr.off+fr.channels > fr.end {
		if fr.eof {
			return io.EOF
		}
		if err := fr.fill(); err != nil {
			return err
		}
	}
	copy(dst, fr.buf[fr.off:fr.off+fr.channels])
	fr.off += fr.channels
	return nil
}

func (fr *frameReader) fill() error {
	// keep a partial frame left over from the previous read
	rest := copy(fr.buf, fr.buf[fr.off:fr.end])
	fr.off, fr.end = 0, rest

	for range maxEmptyReads {
		n, err := fr.src.ReadSamples(fr.buf[fr.end:])
		fr.end += n
		if err == io.EOF {
			fr.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("resampler: read source: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}

// Resampler streams from src at a new sample rate using Catmull-Rom cubic
// interpolation. It works on interleaved frames and keeps the channel count.
// When downsampling, incoming frames go through a one-pole low-pass filter to
// tame aliasing.
type Resampler struct {
	in       *frameReader
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// hist[1] is the source frame at or before the read position and
	// hist[2] the one after it; hist[0] and hist[3] are the outer taps.
	hist   [4][]float32
	base   int     // source index of hist[1]
	pos    float64 // fractional position past hist[1]
	loaded int     // real frames read from the source so far
	primed bool
	done   bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		in:       newFrameReader(src, 1024),
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.in.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.in.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// load reads the next source frame into dst, or repeats the previous frame
// prev once the source is drained.
func (r *Resampler) load(dst, prev []float32) error {
	err := r.in.next(dst)
	if err == io.EOF {
		copy(dst, prev)
		return nil
	}
	if err != nil {
		return err
	}

	if r.lowpass {
		if r.loaded == 0 {
			copy(r.state, dst)
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}
	r.loaded++
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	if err := r.load(r.hist[1], r.hist[1]); err != nil {
		return err
	}
	if r.loaded == 0 {
		r.done = true
		return nil
	}
	copy(r.hist[0], r.hist[1])
	if err := r.load(r.hist[2], r.hist[1]); err != nil {
		return err
	}
	return r.load(r.hist[3], r.hist[2])
}

func (r *Resampler) advance() error {
	first := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2] = r.hist[1], r.hist[2], r.hist[3]
	r.hist[3] = first
	r.base++
	return r.load(r.hist[3], r.hist[2])
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames && !r.done {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if r.in.eof && r.base >= r.loaded {
			r.done = true
			break
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		written++
		r.pos += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}
