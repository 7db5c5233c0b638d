// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAIFF indicates the input is not a valid AIFF file.
	ErrNotAIFF = errors.New("not an AIFF file")

	// ErrOnlyPCM16Supported indicates a bit depth other than 16.
	ErrOnlyPCM16Supported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedLayout indicates an AIFF layout the decoder cannot read.
	ErrUnsupportedLayout = errors.New("unsupported AIFF layout")
)
