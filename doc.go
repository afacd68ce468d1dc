// SPDX-License-Identifier: EPL-2.0

// Package mixbus renders multi-track mixes through a channel graph.
//
// A mix is a set of channels identified by uint32 keys. Every channel has a
// gain and may sum any other channels as inputs; the graph may even feed
// back into itself. Audio enters the graph as blocks deposited by producers
// (usually decoded files) and leaves it by evaluating one root channel, the
// master bus, once per block.
//
// # Packages
//
//   - signal: fixed-shape planar sample buffers and their arithmetic
//   - mixer: the channel graph and the memoized, cycle-safe evaluation
//   - device: producers, output devices and the block pump between them
//   - audio: the Source interface, the format registry, resampling and
//     block cutting
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders,
//     plus a WAV writer used as render target
//   - project: YAML mix descriptions
//
// # Quick Start
//
// Mixdown renders a project into a WAV stream:
//
//	proj, err := project.Load("session.yaml")
//	if err != nil {
//	    return err
//	}
//	out, _ := os.Create("mix.wav")
//	defer out.Close()
//
//	res, err := mixbus.Mixdown(ctx, proj, mixbus.DefaultRegistry(), out,
//	    mixbus.WithBitDepth(24))
//
// MixdownFile does the same from file paths. For live playback, build a
// mixer.Mixer and a device.Pump around your own device.Device instead.
//
// # Performance
//
// Block arithmetic runs on the SIMD kernels of algo-vecmath. Evaluation
// visits each channel at most once per block, whatever the topology.
package mixbus
