// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWAV indicates the input is not a valid WAV container.
	ErrNotWAV = errors.New("not a WAV file")

	// ErrUnsupportedPCM indicates a layout outside mono 8- or 16-bit PCM.
	ErrUnsupportedPCM = errors.New("unsupported PCM layout")
)
