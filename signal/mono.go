// SPDX-License-Identifier: EPL-2.0

package signal

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Sample is a single audio value. Mixing happens in float64 so that summing
// many buses does not lose precision before the device conversion.
type Sample = float64

// Mono is an owned, fixed-length run of samples. The zero value is the empty
// signal.
//
// Assignment copies the header only; use Clone to duplicate storage and Move
// to hand storage to a new owner.
type Mono struct {
	data []Sample
}

// NewMono allocates a zero-filled signal of length samples.
func NewMono(length int) Mono {
	if length <= 0 {
		return Mono{}
	}
	return Mono{data: make([]Sample, length)}
}

// MonoFrom copies samples into a new signal.
func MonoFrom(samples []Sample) Mono {
	m := NewMono(len(samples))
	copy(m.data, samples)
	return m
}

func (m Mono) Len() int { return len(m.data) }

func (m Mono) IsPresent() bool { return m.data != nil && len(m.data) > 0 }
func (m Mono) IsEmpty() bool   { return !m.IsPresent() }

// At returns the sample at index i.
func (m Mono) At(i int) (Sample, error) {
	if i < 0 || i >= len(m.data) {
		return 0, &IndexOutOfRangeError{Index: i, Len: len(m.data)}
	}
	return m.data[i], nil
}

// Set stores v at index i.
func (m Mono) Set(i int, v Sample) error {
	if i < 0 || i >= len(m.data) {
		return &IndexOutOfRangeError{Index: i, Len: len(m.data)}
	}
	m.data[i] = v
	return nil
}

// Samples returns a copy of the signal's samples.
func (m Mono) Samples() []Sample {
	if m.IsEmpty() {
		return nil
	}
	out := make([]Sample, len(m.data))
	copy(out, m.data)
	return out
}

// Clone duplicates the storage.
func (m Mono) Clone() Mono {
	return MonoFrom(m.data)
}

// Move transfers the storage to the returned signal and leaves m empty.
func (m *Mono) Move() Mono {
	out := Mono{data: m.data}
	m.data = nil
	return out
}

// Clear releases the storage.
func (m *Mono) Clear() {
	m.data = nil
}

// Equal reports whether both signals have the same length and samples.
func (m Mono) Equal(other Mono) bool {
	if len(m.data) != len(other.data) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Peak returns the largest absolute sample value.
func (m Mono) Peak() Sample {
	if m.IsEmpty() {
		return 0
	}
	return vecmath.MaxAbs(m.data)
}

func (m Mono) checkLen(other Mono) error {
	if len(m.data) != len(other.data) {
		return &ShapeMismatchError{
			Want: Shape{Channels: 1, Length: len(m.data)},
			Got:  Shape{Channels: 1, Length: len(other.data)},
		}
	}
	return nil
}

// Add returns m + other.
func (m Mono) Add(other Mono) (Mono, error) {
	if err := m.checkLen(other); err != nil {
		return Mono{}, err
	}
	out := NewMono(len(m.data))
	if out.IsPresent() {
		vecmath.AddBlock(out.data, m.data, other.data)
	}
	return out, nil
}

// AddInPlace adds other into m.
func (m Mono) AddInPlace(other Mono) error {
	if err := m.checkLen(other); err != nil {
		return err
	}
	if m.IsPresent() {
		vecmath.AddBlockInPlace(m.data, other.data)
	}
	return nil
}

// Sub returns m - other.
func (m Mono) Sub(other Mono) (Mono, error) {
	out := m.Clone()
	if err := out.SubInPlace(other); err != nil {
		return Mono{}, err
	}
	return out, nil
}

// SubInPlace subtracts other from m.
func (m Mono) SubInPlace(other Mono) error {
	if err := m.checkLen(other); err != nil {
		return err
	}
	for i, v := range other.data {
		m.data[i] -= v
	}
	return nil
}

// Neg returns -m.
func (m Mono) Neg() Mono {
	return m.Scale(-1)
}

// NegInPlace negates every sample of m.
func (m Mono) NegInPlace() {
	m.ScaleInPlace(-1)
}

// Scale returns m * s.
func (m Mono) Scale(s float64) Mono {
	out := NewMono(len(m.data))
	if out.IsPresent() {
		vecmath.ScaleBlock(out.data, m.data, s)
	}
	return out
}

// ScaleInPlace multiplies every sample of m by s.
func (m Mono) ScaleInPlace(s float64) {
	if m.IsPresent() {
		vecmath.ScaleBlockInPlace(m.data, s)
	}
}

// Div returns m / s.
func (m Mono) Div(s float64) Mono {
	out := m.Clone()
	out.DivInPlace(s)
	return out
}

// DivInPlace divides every sample of m by s.
func (m Mono) DivInPlace(s float64) {
	for i := range m.data {
		m.data[i] /= s
	}
}
