// SPDX-License-Identifier: EPL-2.0

package morse

import "errors"

var (
	// ErrUnsupportedCharacter indicates input text contains a character
	// with no Morse code entry.
	ErrUnsupportedCharacter = errors.New("character cannot be encoded in Morse")
)
