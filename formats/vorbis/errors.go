// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbis wraps failures to read the Ogg/Vorbis identification headers.
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrNoChannels is returned for a stream header declaring zero channels.
	ErrNoChannels = errors.New("vorbis: stream has no channels")
)
