// SPDX-License-Identifier: EPL-2.0

package morsewav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/morsewav/signal"
)

// selfTestMessage exercises letters, digits, punctuation and word gaps.
const selfTestMessage = "I HAVE 2 CUPS OF WATER."

// SelfTest encodes a fixed sentence to a temporary WAV file, decodes it
// back, and compares. Progress goes to w; a mismatch fails with
// ErrSelfTestFailed.
func SelfTest(w io.Writer) error {
	dir, err := os.MkdirTemp("", "morsewav-selftest-")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "message.txt")
	wavPath := filepath.Join(dir, "message.wav")
	outPath := filepath.Join(dir, "decoded.txt")

	if err := os.WriteFile(inPath, []byte(selfTestMessage), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	encoder := NewEncoder(signal.Width16)
	code, err := encoder.Encode(selfTestMessage)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Generated Morse:\n%s\n\n", code)

	if err := encoder.EncodeFile(inPath, wavPath); err != nil {
		return err
	}
	if err := NewDecoder().DecodeFile(wavPath, outPath); err != nil {
		return err
	}

	decoded, err := os.ReadFile(outPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Fprintf(w, "Original message: %s\n", selfTestMessage)
	fmt.Fprintf(w, "Decoded message: %s\n", decoded)

	if string(decoded) != selfTestMessage {
		fmt.Fprintln(w, "FAILURE")
		return ErrSelfTestFailed
	}

	fmt.Fprintln(w, "SUCCESS")
	return nil
}
