// SPDX-License-Identifier: EPL-2.0

// Package morse converts text to and from International Morse code strings.
//
// A Morse string uses '.' for dot, '-' for dash, a single space between the
// codes of characters within a word, and three spaces between words:
//
//	"....  .- ...- ." is not well formed; ".... .- ...- ." is "HAVE"
//	".." + "   " + ".... .- ...- ." decodes to "I HAVE"
//
// # Supported characters
//
// Letters A-Z (case folded), digits 0-9, and the punctuation '.', ',' and
// '?'. Space is its own entry, mapping to the word-boundary token.
//
// # Encoding
//
//	code, err := morse.Encode("I have 2 cups of water.")
//	if errors.Is(err, morse.ErrUnsupportedCharacter) {
//	    // input contained a character outside the table
//	}
//
// Encode fails on the first unsupported character; decoded text is always
// uppercase.
//
// # Decoding
//
//	text := morse.Decode(".. -   .. ...")
//
// Decode is lenient: tokens with no table entry are skipped silently and
// never produce an error. Callers that need strict validation must check
// the input themselves.
//
// The character table is built once at package init and is read-only
// afterwards, so it is safe for concurrent use without locking.
package morse
