// SPDX-License-Identifier: EPL-2.0

package morsewav

import (
	"fmt"
	"os"
	"strings"

	"github.com/ik5/morsewav/formats/wav"
	"github.com/ik5/morsewav/morse"
	"github.com/ik5/morsewav/signal"
)

// Encoder turns text into Morse audio. It is encode-only; decoding lives
// on the separate Decoder type, so there is no "wrong direction" failure
// mode to hit at runtime.
type Encoder struct {
	cfg   signal.Config
	width signal.Width
}

// NewEncoder returns an Encoder producing PCM at the given sample width
// with the standard timing.
func NewEncoder(width signal.Width) *Encoder {
	return &Encoder{
		cfg:   signal.DefaultConfig(),
		width: width,
	}
}

// Encode converts text to its Morse string. It fails with
// morse.ErrUnsupportedCharacter on input outside the character table.
func (e *Encoder) Encode(text string) (string, error) {
	return morse.Encode(text)
}

// Samples converts text all the way to PCM samples.
func (e *Encoder) Samples(text string) ([]int, error) {
	code, err := morse.Encode(text)
	if err != nil {
		return nil, err
	}
	return signal.NewSynthesizer(e.cfg, e.width).Samples(code), nil
}

// EncodeFile reads a text file and writes its Morse audio as a mono PCM
// WAV file. A trailing newline in the text file is ignored; any other
// unsupported character aborts the encode. On failure a partially
// written output file may be left behind.
func (e *Encoder) EncodeFile(inPath, outPath string) error {
	text, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	samples, err := e.Samples(strings.TrimRight(string(text), "\r\n"))
	if err != nil {
		return err
	}

	return wav.WriteFile(outPath, e.cfg.SampleRate, e.width.Bits(), samples)
}
