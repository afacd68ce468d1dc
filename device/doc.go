// SPDX-License-Identifier: EPL-2.0

// Package device connects a mixer to whatever consumes its output.
//
// A Device reports how many frames it still holds and accepts new blocks.
// A Pump watches that count and, once it drops below the mixer's chunk
// size, runs one block: the mixer is reset, every Producer deposits its
// next block, the master channel is evaluated and the result is queued.
//
//	m, _ := mixer.New(mixer.Config{ChunkSize: 1024, SampleRate: 48000, Channels: 2})
//	m.Connect(0, 1)
//
//	pump := device.NewPump(m, 0, sink)
//	pump.Add(device.NewSourceProducer(1, blocks, 1))
//	defer pump.Drain()
//
//	err := pump.Run(ctx)
//
// Buffer is an in-memory Device for tests and for callers that hand blocks
// to a playback API themselves. wav.Writer is a Device for offline renders.
package device
