// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch   = errors.New("signal shape mismatch")
	ErrIndexOutOfRange = errors.New("signal index out of range")
)

// ShapeMismatchError reports two operands (or a signal and an expected shape)
// that do not agree.
type ShapeMismatchError struct {
	Want Shape
	Got  Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: want %v, got %v", ErrShapeMismatch, e.Want, e.Got)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// IndexOutOfRangeError reports a sample or channel index beyond bounds.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }
