// SPDX-License-Identifier: EPL-2.0

package signal

import "fmt"

// Shape is the (channel count, length) pair of a multi-channel signal.
type Shape struct {
	Channels int
	Length   int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Channels, s.Length)
}

// Signal is a fixed number of equally long Mono channels. The zero value is
// the empty (absent) signal.
type Signal struct {
	chans  []Mono
	length int
}

// NewSignal allocates a zero-filled signal of the given shape.
func NewSignal(channels, length int) Signal {
	if channels <= 0 {
		return Signal{}
	}
	s := Signal{chans: make([]Mono, channels), length: length}
	for i := range s.chans {
		s.chans[i] = NewMono(length)
	}
	return s
}

// Silence allocates a zero-filled signal of shape sh.
func Silence(sh Shape) Signal {
	return NewSignal(sh.Channels, sh.Length)
}

// FromChannels copies planar data into a new signal. Every channel must have
// the same length.
func FromChannels(data [][]Sample) (Signal, error) {
	if len(data) == 0 {
		return Signal{}, nil
	}
	length := len(data[0])
	s := Signal{chans: make([]Mono, len(data)), length: length}
	for i, c := range data {
		if len(c) != length {
			return Signal{}, &ShapeMismatchError{
				Want: Shape{Channels: len(data), Length: length},
				Got:  Shape{Channels: len(data), Length: len(c)},
			}
		}
		s.chans[i] = MonoFrom(c)
	}
	return s, nil
}

// FromInterleaved de-interleaves frames of float32 samples into a new signal.
// len(src) must be a multiple of channels.
func FromInterleaved(src []float32, channels int) (Signal, error) {
	if channels <= 0 || len(src)%channels != 0 {
		return Signal{}, fmt.Errorf("%w: %d samples for %d channels", ErrShapeMismatch, len(src), channels)
	}
	frames := len(src) / channels
	s := NewSignal(channels, frames)
	for f := range frames {
		base := f * channels
		for c := range channels {
			s.chans[c].data[f] = Sample(src[base+c])
		}
	}
	return s, nil
}

func (s Signal) Channels() int { return len(s.chans) }
func (s Signal) Len() int      { return s.length }
func (s Signal) Shape() Shape  { return Shape{Channels: len(s.chans), Length: s.length} }

func (s Signal) IsPresent() bool { return s.chans != nil && len(s.chans) > 0 && s.length > 0 }
func (s Signal) IsEmpty() bool   { return !s.IsPresent() }

// Channel returns channel ch. The returned Mono shares storage with s, so
// writes through it are visible in s.
func (s Signal) Channel(ch int) (Mono, error) {
	if ch < 0 || ch >= len(s.chans) {
		return Mono{}, &IndexOutOfRangeError{Index: ch, Len: len(s.chans)}
	}
	return s.chans[ch], nil
}

// At returns sample i of channel ch.
func (s Signal) At(ch, i int) (Sample, error) {
	m, err := s.Channel(ch)
	if err != nil {
		return 0, err
	}
	return m.At(i)
}

// Set stores v at sample i of channel ch.
func (s Signal) Set(ch, i int, v Sample) error {
	m, err := s.Channel(ch)
	if err != nil {
		return err
	}
	return m.Set(i, v)
}

// Clone duplicates the storage of every channel.
func (s Signal) Clone() Signal {
	if s.chans == nil {
		return Signal{}
	}
	out := Signal{chans: make([]Mono, len(s.chans)), length: s.length}
	for i, c := range s.chans {
		out.chans[i] = c.Clone()
	}
	return out
}

// Move transfers the storage to the returned signal and leaves s empty.
func (s *Signal) Move() Signal {
	out := *s
	*s = Signal{}
	return out
}

// Clear releases the storage.
func (s *Signal) Clear() {
	*s = Signal{}
}

// Equal reports whether both signals have the same shape and samples.
func (s Signal) Equal(other Signal) bool {
	if s.Shape() != other.Shape() {
		return false
	}
	for i, c := range s.chans {
		if !c.Equal(other.chans[i]) {
			return false
		}
	}
	return true
}

// Peak returns the largest absolute sample value over all channels.
func (s Signal) Peak() Sample {
	var peak Sample
	for _, c := range s.chans {
		peak = max(peak, c.Peak())
	}
	return peak
}

// Interleave writes s into dst as interleaved float32 frames and returns the
// number of values written. dst must hold Channels()*Len() values.
func (s Signal) Interleave(dst []float32) (int, error) {
	n := len(s.chans) * s.length
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d values, dst holds %d", ErrShapeMismatch, n, len(dst))
	}
	channels := len(s.chans)
	for c, m := range s.chans {
		for f, v := range m.data {
			dst[f*channels+c] = float32(v)
		}
	}
	return n, nil
}

// CheckShape fails with a *ShapeMismatchError unless s has shape want.
func (s Signal) CheckShape(want Shape) error {
	if got := s.Shape(); got != want {
		return &ShapeMismatchError{Want: want, Got: got}
	}
	return nil
}

// Add returns s + other.
func (s Signal) Add(other Signal) (Signal, error) {
	out := s.Clone()
	if err := out.AddInPlace(other); err != nil {
		return Signal{}, err
	}
	return out, nil
}

// AddInPlace adds other into s.
func (s Signal) AddInPlace(other Signal) error {
	if err := other.CheckShape(s.Shape()); err != nil {
		return err
	}
	for i, c := range s.chans {
		if err := c.AddInPlace(other.chans[i]); err != nil {
			return err
		}
	}
	return nil
}

// Sub returns s - other.
func (s Signal) Sub(other Signal) (Signal, error) {
	out := s.Clone()
	if err := out.SubInPlace(other); err != nil {
		return Signal{}, err
	}
	return out, nil
}

// SubInPlace subtracts other from s.
func (s Signal) SubInPlace(other Signal) error {
	if err := other.CheckShape(s.Shape()); err != nil {
		return err
	}
	for i, c := range s.chans {
		if err := c.SubInPlace(other.chans[i]); err != nil {
			return err
		}
	}
	return nil
}

// Neg returns -s.
func (s Signal) Neg() Signal {
	return s.Scale(-1)
}

// NegInPlace negates every sample of s.
func (s Signal) NegInPlace() {
	s.ScaleInPlace(-1)
}

// Scale returns s * k.
func (s Signal) Scale(k float64) Signal {
	out := s.Clone()
	out.ScaleInPlace(k)
	return out
}

// ScaleInPlace multiplies every sample of s by k.
func (s Signal) ScaleInPlace(k float64) {
	for _, c := range s.chans {
		c.ScaleInPlace(k)
	}
}

// Div returns s / k.
func (s Signal) Div(k float64) Signal {
	out := s.Clone()
	out.DivInPlace(k)
	return out
}

// DivInPlace divides every sample of s by k.
func (s Signal) DivInPlace(k float64) {
	for _, c := range s.chans {
		c.DivInPlace(k)
	}
}
