// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"errors"
	"testing"
)

func TestToMorse_KnownCharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		char rune
		want string
	}{
		{'A', ".-"},
		{'E', "."},
		{'I', ".."},
		{'T', "-"},
		{'Z', "--.."},
		{'0', "-----"},
		{'2', "..---"},
		{'9', "----."},
		{'.', ".-.-.-"},
		{',', "--..--"},
		{'?', "..--.."},
		{' ', WordBoundary},
	}

	for _, tt := range tests {
		got, err := ToMorse(tt.char)
		if err != nil {
			t.Errorf("ToMorse(%q) unexpected error: %v", tt.char, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToMorse(%q) = %q, want %q", tt.char, got, tt.want)
		}
	}
}

func TestToMorse_CaseFolding(t *testing.T) {
	t.Parallel()

	for r := 'a'; r <= 'z'; r++ {
		lower, err := ToMorse(r)
		if err != nil {
			t.Fatalf("ToMorse(%q) unexpected error: %v", r, err)
		}
		upper, err := ToMorse(r - ('a' - 'A'))
		if err != nil {
			t.Fatalf("ToMorse(%q) unexpected error: %v", r-('a'-'A'), err)
		}
		if lower != upper {
			t.Errorf("ToMorse(%q) = %q, but uppercase gives %q", r, lower, upper)
		}
	}
}

func TestToMorse_Unsupported(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'#', '!', '@', 'é', '\t'} {
		_, err := ToMorse(r)
		if !errors.Is(err, ErrUnsupportedCharacter) {
			t.Errorf("ToMorse(%q) error = %v, want ErrUnsupportedCharacter", r, err)
		}
	}
}

func TestToRune_NoMatchIsNotError(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"......", ".-.-.--", "x", ""} {
		if r, ok := ToRune(code); ok {
			t.Errorf("ToRune(%q) = %q, ok=true, want no match", code, r)
		}
	}
}

func TestTable_Bijection(t *testing.T) {
	t.Parallel()

	seen := make(map[string]rune, len(codes))
	for char, code := range codes {
		if prev, dup := seen[code]; dup {
			t.Errorf("code %q maps both %q and %q", code, prev, char)
		}
		seen[code] = char

		got, ok := ToRune(code)
		if !ok {
			t.Errorf("ToRune(%q) has no match, want %q", code, char)
			continue
		}
		if got != char {
			t.Errorf("ToRune(%q) = %q, want %q", code, got, char)
		}
	}

	// 26 letters + 10 digits + 3 punctuation + space
	if len(codes) != 40 {
		t.Errorf("table has %d entries, want 40", len(codes))
	}
}

func TestTable_CodesAreDotsAndDashes(t *testing.T) {
	t.Parallel()

	for char, code := range codes {
		if char == ' ' {
			continue
		}
		for _, c := range code {
			if c != '.' && c != '-' {
				t.Errorf("code for %q contains %q, want only dots and dashes", char, c)
			}
		}
	}
}
