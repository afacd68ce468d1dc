// SPDX-License-Identifier: EPL-2.0

// Package audio provides the producer side of the mixer: decoded sources,
// sample-rate conversion and the block reader that turns a stream into
// mixer-shaped blocks.
//
// # Source Interface
//
// The Source interface is the foundation of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders under formats/ return Sources, and the Resampler wraps one Source
// in another, so they chain into pipelines.
//
// # Resampling
//
// A producer recorded at a different rate than the mixer is converted with
// the Resampler, which uses cubic interpolation:
//
//	resampled := audio.NewResampler(source, 48000)
//
// # Blocks
//
// The BlockReader reads a Source in chunks of the mixer's shape, adapting
// mono to multi-channel (spread) and multi-channel to mono (average):
//
//	br, err := audio.NewBlockReader(resampled, m.ChannelCount(), m.ChunkSize())
//	block, err := br.ReadBlock()
//	err = m.DepositSignal(1, block)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.DecoderFor("drums.wav")
//
// # Sample Format
//
// Sources deliver float32 samples in the range [-1.0, 1.0]. Blocks hold
// float64 samples so that summing many buses keeps precision; nothing is
// clipped until the device or file writer converts the mix back to PCM.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
