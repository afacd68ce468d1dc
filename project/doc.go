// SPDX-License-Identifier: EPL-2.0

// Package project loads mix descriptions from YAML.
//
//	chunk_size: 1024
//	sample_rate: 48000
//	channels: 2
//	master: 0
//	buses:
//	  - key: 0
//	    inputs: [10, 20]
//	  - key: 10
//	    gain: 0.8
//	    inputs: [1, 2]
//	tracks:
//	  - path: drums.wav
//	    channel: 1
//	  - path: bass.aiff
//	    channel: 2
//	    gain: 0.5
//
// Omitted sample_rate and channels default to 48000 Hz stereo, and an
// omitted chunk_size to a quarter second. A gain that is not given is 1.
// Unknown keys are rejected.
package project
