// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrChannelLayout  = errors.New("unsupported channel layout conversion")
	ErrUnknownFormat  = errors.New("unknown audio format")
)

// FormatError reports a path whose extension has no registered decoder.
type FormatError struct {
	Path   string
	Format string
}

func (e *FormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%v: %s has no extension", ErrUnknownFormat, e.Path)
	}
	return fmt.Sprintf("%v: %q (%s)", ErrUnknownFormat, e.Format, e.Path)
}

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }
