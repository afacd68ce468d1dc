// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files through
// github.com/go-audio/wav.
//
// The Decoder accepts 8, 16, 24 and 32-bit PCM at any rate and channel
// count and yields an audio.Source with samples normalized to [-1, 1].
// Input that is not an io.ReadSeeker is buffered in memory first, because
// the RIFF parser seeks between chunks.
//
// The Writer is the render target of an offline mixdown: it takes the
// planar signal.Signal blocks produced by the mixer, interleaves them,
// quantizes them to the configured bit depth and encodes them.
//
//	f, _ := os.Create("mix.wav")
//	w, err := wav.NewWriter(f, 48000, 2, 24)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	err = w.Queue(block)
//
// Floating point and compressed WAV data are rejected with
// ErrUnsupportedEncoding.
package wav
