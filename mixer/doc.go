// SPDX-License-Identifier: EPL-2.0

// Package mixer implements the block mixing engine.
//
// A Mixer owns a graph of channels keyed by caller-assigned uint32 keys.
// Each channel has a gain and a set of input channels. During a block,
// producers deposit signals into channels; a consumer then evaluates a root
// channel (usually the master bus):
//
//	m, _ := mixer.New(mixer.Config{ChunkSize: 512, SampleRate: 48000, Channels: 2})
//	m.Connect(0, 1) // master sums bus 1
//	m.SetGain(1, 0.5)
//
//	m.ResetBlock()
//	_ = m.DepositSignal(1, block)
//	out, _ := m.EvaluateChannel(0)
//
// The graph may contain cycles. Evaluation memoizes every channel for the
// duration of one call and drops the contribution of a channel reached again
// while it is still being evaluated, so every call terminates after visiting
// each channel at most once.
//
// Summation and gain are plain arithmetic; no clipping or normalization is
// done.
package mixer
