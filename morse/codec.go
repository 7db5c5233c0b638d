// SPDX-License-Identifier: EPL-2.0

package morse

import "strings"

// Encode converts text to a Morse string.
//
// Letters are case folded to uppercase before lookup, so the decoded text
// is always uppercase. Runs of consecutive spaces collapse into a single
// word boundary. Between two consecutive character codes exactly one
// single-space separator is inserted, with no leading separator before
// the first code.
//
// Encoding is all-or-nothing: the first character without a table entry
// fails with ErrUnsupportedCharacter and any partial output is discarded.
func Encode(text string) (string, error) {
	var sb strings.Builder
	prevWasSpace := false

	for _, r := range text {
		if r == ' ' {
			if !prevWasSpace {
				sb.WriteString(WordBoundary)
			}
			prevWasSpace = true
			continue
		}

		code, err := ToMorse(r)
		if err != nil {
			return "", err
		}

		if sb.Len() > 0 && !prevWasSpace {
			sb.WriteByte(' ')
		}
		sb.WriteString(code)
		prevWasSpace = false
	}

	return sb.String(), nil
}

// Decode converts a Morse string back to text.
//
// The input is split on the word-boundary token into words, and each word
// on single spaces into code tokens. Decoded words are joined with exactly
// one space. Unrecognized tokens are dropped silently: Decode never fails
// for malformed Morse. This leniency is intentional, mirroring the way a
// human operator skips over garbled characters.
func Decode(morseStr string) string {
	var sb strings.Builder

	for i, word := range strings.Split(morseStr, WordBoundary) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for _, token := range strings.Fields(word) {
			if r, ok := ToRune(token); ok {
				sb.WriteRune(r)
			}
		}
	}

	return sb.String()
}
