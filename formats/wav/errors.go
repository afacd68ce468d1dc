// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no readable RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding is returned for compressed or floating point WAV data.
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")

	// ErrUnsupportedBitDepth is returned when the sample width is not 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrWriterClosed is returned when queueing into a closed Writer.
	ErrWriterClosed = errors.New("wav: writer closed")
)
