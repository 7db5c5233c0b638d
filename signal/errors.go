// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrUnsupportedWidth indicates a bits-per-sample value other than 8 or 16.
	ErrUnsupportedWidth = errors.New("unsupported sample width")

	// ErrSampleWidthMismatch indicates the width recorded in a container's
	// metadata disagrees with the width the decoder was configured for.
	ErrSampleWidthMismatch = errors.New("sample width does not match container")
)
