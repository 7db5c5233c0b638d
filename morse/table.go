// SPDX-License-Identifier: EPL-2.0

package morse

import "fmt"

// WordBoundary is the token that separates words in a Morse string.
// Characters inside one word are separated by a single space.
const WordBoundary = "   "

// codes maps every supported character to its Morse representation.
// Space maps to the word-boundary token rather than a dot/dash code.
var codes = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...",
	'8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..",
	' ': WordBoundary,
}

// runes is the exact inverse of codes, built once at init.
// The table is read-only afterwards and safe to share without locking.
var runes = func() map[string]rune {
	inv := make(map[string]rune, len(codes))
	for r, code := range codes {
		if _, dup := inv[code]; dup {
			panic(fmt.Sprintf("morse: duplicate code %q", code))
		}
		inv[code] = r
	}
	return inv
}()

// ToMorse returns the Morse code for r after case folding.
// Unsupported characters fail with ErrUnsupportedCharacter.
func ToMorse(r rune) (string, error) {
	code, ok := codes[fold(r)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCharacter, r)
	}
	return code, nil
}

// ToRune returns the character for a Morse code token.
// An unrecognized token reports ok == false; this is not an error,
// the codec silently skips such tokens.
func ToRune(code string) (rune, bool) {
	r, ok := runes[code]
	return r, ok
}

// fold maps lowercase ASCII letters to uppercase before lookup.
func fold(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
