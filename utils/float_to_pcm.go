// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToPCM converts a normalized sample in [-1, 1] to a signed integer
// sample scaled to maxAmplitude. Out-of-range input is clamped.
func Float32ToPCM(x float32, maxAmplitude int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * float32(maxAmplitude))
}

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 32767))
}
