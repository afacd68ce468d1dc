// SPDX-License-Identifier: EPL-2.0

// Package signal provides the sample containers the mixer works with.
//
// A Mono is a fixed-length run of float64 samples; a Signal is a fixed
// number of equally long Mono channels. Both have value semantics: Clone
// duplicates storage, Move hands it to a new owner and empties the source.
//
//	a := signal.NewSignal(2, 512)
//	b := a.Clone()
//	sum, err := a.Add(b)
//
// # Shapes
//
// Elementwise operations (Add, Sub and their in-place forms) require both
// operands to have the same Shape and fail with a *ShapeMismatchError
// otherwise. Nothing is ever padded or truncated:
//
//	if errors.Is(err, signal.ErrShapeMismatch) {
//	    // caller built the block with the wrong chunk size or layout
//	}
//
// Index accessors fail with an *IndexOutOfRangeError.
//
// # Presence
//
// The zero Signal is "absent": IsPresent reports false. The mixer uses an
// absent signal to say that nothing was routed into a channel during a
// block, which is different from a block of silence.
package signal
