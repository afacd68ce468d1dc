// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// AIFF stores big-endian signed PCM; 8, 16, 24 and 32-bit files are
// normalized to [-1, 1]. AIFF-C compressed variants are not supported.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // e.g. 12-bit sampler dumps
//	}
//
// Decoding needs an io.ReadSeeker. Other readers are buffered in memory.
package aiff
