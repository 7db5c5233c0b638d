// SPDX-License-Identifier: EPL-2.0

package morsewav

import "errors"

var (
	// ErrUnknownFormat indicates a decode input whose file extension maps
	// to no registered audio format.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrSelfTestFailed indicates the built-in round trip did not
	// reproduce its test message.
	ErrSelfTestFailed = errors.New("self-test round trip failed")
)
