// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III audio with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's native rate,
// so mono recordings arrive duplicated on both channels. Feed the source
// through audio.NewResampler and audio.NewBlockReader to bring it to the
// mix rate and layout.
package mp3
