// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/mixbus/signal"
)

// BlockReader cuts a Source into fixed-shape blocks that can be deposited
// into a mixer. It adapts the channel layout on the way:
//   - equal channel counts pass through
//   - a mono source is spread to every output channel
//   - any source is averaged down when the output is mono
//
// Other layouts are rejected with ErrChannelLayout. The last block of a
// source is zero padded; the call after it returns io.EOF.
type BlockReader struct {
	src      Source
	srcChans int
	channels int
	length   int

	buf    []float32
	planar [][]signal.Sample
	done   bool
}

// NewBlockReader reads src in blocks of channels x length samples.
func NewBlockReader(src Source, channels, length int) (*BlockReader, error) {
	srcChans := src.Channels()
	if channels <= 0 || length <= 0 || srcChans <= 0 {
		return nil, fmt.Errorf("%w: %d source channels into %dx%d blocks", ErrChannelLayout, srcChans, channels, length)
	}
	if srcChans != channels && srcChans != 1 && channels != 1 {
		return nil, fmt.Errorf("%w: %d -> %d channels", ErrChannelLayout, srcChans, channels)
	}

	br := &BlockReader{
		src:      src,
		srcChans: srcChans,
		channels: channels,
		length:   length,
		buf:      make([]float32, length*srcChans),
		planar:   make([][]signal.Sample, channels),
	}
	for c := range br.planar {
		br.planar[c] = make([]signal.Sample, length)
	}
	return br, nil
}

// Shape of the blocks returned by ReadBlock.
func (br *BlockReader) Shape() signal.Shape {
	return signal.Shape{Channels: br.channels, Length: br.length}
}

func (br *BlockReader) Close() error {
	if err := br.src.Close(); err != nil {
		return fmt.Errorf("block reader: %w", err)
	}
	return nil
}

// ReadBlock returns the next block. At the end of the source it returns an
// absent signal and io.EOF.
func (br *BlockReader) ReadBlock() (signal.Signal, error) {
	if br.done {
		return signal.Signal{}, io.EOF
	}

	n, err := br.fill()
	if err != nil {
		return signal.Signal{}, err
	}
	frames := n / br.srcChans
	if frames == 0 {
		br.done = true
		return signal.Signal{}, io.EOF
	}

	br.convert(frames)
	return signal.FromChannels(br.planar)
}

// fill reads until the buffer holds a full block or the source ends.
func (br *BlockReader) fill() (int, error) {
	n, empty := 0, 0
	for n < len(br.buf) {
		got, err := br.src.ReadSamples(br.buf[n:])
		n += got
		if err == io.EOF {
			br.done = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("block reader: %w", err)
		}
		if got == 0 {
			empty++
			if empty >= maxEmptyReads {
				return 0, io.ErrNoProgress
			}
		}
	}
	return n, nil
}

func (br *BlockReader) convert(frames int) {
	for c := range br.planar {
		clear(br.planar[c][frames:])
	}

	switch {
	case br.srcChans == br.channels:
		for f := range frames {
			base := f * br.srcChans
			for c := range br.channels {
				br.planar[c][f] = signal.Sample(br.buf[base+c])
			}
		}
	case br.srcChans == 1:
		for f := range frames {
			v := signal.Sample(br.buf[f])
			for c := range br.channels {
				br.planar[c][f] = v
			}
		}
	case br.srcChans == 2:
		out := br.planar[0]
		for f := range frames {
			idx := f << 1
			out[f] = (signal.Sample(br.buf[idx]) + signal.Sample(br.buf[idx+1])) * 0.5
		}
	default:
		out := br.planar[0]
		inv := 1 / signal.Sample(br.srcChans)
		for f := range frames {
			var sum signal.Sample
			base := f * br.srcChans
			for c := range br.srcChans {
				sum += signal.Sample(br.buf[base+c])
			}
			out[f] = sum * inv
		}
	}
}
