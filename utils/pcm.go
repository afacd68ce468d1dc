// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// fullScale returns 2^(bitDepth-1), the magnitude of the most negative
// signed PCM value at bitDepth.
func fullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// PCMToFloat converts a signed PCM integer of the given bit depth to the
// range [-1, 1).
func PCMToFloat(v, bitDepth int) float64 {
	return float64(v) / fullScale(bitDepth)
}

// FloatToPCM converts x to a signed PCM integer of the given bit depth,
// clamping to the representable range.
func FloatToPCM(x float64, bitDepth int) int {
	full := fullScale(bitDepth)
	v := math.Round(x * full)
	if v > full-1 {
		v = full - 1
	} else if v < -full {
		v = -full
	}
	return int(v)
}
