// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Channel count and rate come from the identification header. Samples are
// delivered interleaved in the decoder's native float32 range, without
// integer conversion.
package vorbis
