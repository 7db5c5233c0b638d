// SPDX-License-Identifier: EPL-2.0

package signal

import "fmt"

// Width is the PCM sample width in bits. It is a runtime parameter of the
// Synthesizer and Analyzer; the width recorded in a container's metadata
// must match the width used to decode it.
type Width int

const (
	// Width8 is 8-bit signed PCM.
	Width8 Width = 8
	// Width16 is 16-bit signed PCM.
	Width16 Width = 16
)

// WidthFromBits converts a container's bits-per-sample field to a Width.
// Anything other than 8 or 16 fails with ErrUnsupportedWidth.
func WidthFromBits(bits int) (Width, error) {
	switch bits {
	case 8:
		return Width8, nil
	case 16:
		return Width16, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bits)
	}
}

// Bits returns the width in bits.
func (w Width) Bits() int { return int(w) }

// MaxAmplitude returns the largest representable sample value at this
// width: 127 for Width8, 32767 for Width16.
func (w Width) MaxAmplitude() int {
	return 1<<(w-1) - 1
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}
