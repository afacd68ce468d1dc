// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/mixbus/signal"
	"github.com/ik5/mixbus/utils"
)

// Writer encodes mixed blocks into an integer PCM WAV stream.
//
// A Writer never holds queued audio, so a device.Pump driving it mixes one
// block per step. Close must be called to finalize the RIFF sizes; it does
// not close the underlying writer.
type Writer struct {
	enc      *wav.Encoder
	format   *goaudio.Format
	channels int
	bitDepth int

	interleaved []float32
	ints        *goaudio.IntBuffer
	frames      int
	closed      bool
}

// NewWriter prepares a WAV encoder over w. The header is written with the
// first block.
func NewWriter(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 || sampleRate < 1 {
		return nil, fmt.Errorf("wav: invalid stream layout %d channels at %d Hz", channels, sampleRate)
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		format:   format,
		channels: channels,
		bitDepth: bitDepth,
		ints:     &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth},
	}, nil
}

// QueuedSamples always reports zero: every block is encoded on Queue.
func (w *Writer) QueuedSamples() int { return 0 }

// Frames returns the number of frames encoded so far.
func (w *Writer) Frames() int { return w.frames }

// Queue encodes block. The block must carry exactly the writer's channel
// count; samples outside [-1, 1] are clipped.
func (w *Writer) Queue(block signal.Signal) error {
	if w.closed {
		return ErrWriterClosed
	}
	if block.IsEmpty() {
		return nil
	}
	if block.Channels() != w.channels {
		return &signal.ShapeMismatchError{
			Want: signal.Shape{Channels: w.channels, Length: block.Len()},
			Got:  block.Shape(),
		}
	}

	size := block.Channels() * block.Len()
	if cap(w.interleaved) < size {
		w.interleaved = make([]float32, size)
		w.ints.Data = make([]int, size)
	}
	w.interleaved = w.interleaved[:size]
	w.ints.Data = w.ints.Data[:size]

	if _, err := block.Interleave(w.interleaved); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	offset := 0
	if w.bitDepth == 8 {
		offset = 128
	}
	for i, v := range w.interleaved {
		w.ints.Data[i] = utils.FloatToPCM(float64(v), w.bitDepth) + offset
	}

	if err := w.enc.Write(w.ints); err != nil {
		return fmt.Errorf("wav: encoding block: %w", err)
	}
	w.frames += block.Len()

	return nil
}

// Close patches the header sizes. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.frames == 0 {
		// the encoder only emits its header on the first write
		if err := w.enc.Write(&goaudio.IntBuffer{Format: w.format}); err != nil {
			return fmt.Errorf("wav: writing header: %w", err)
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
