// SPDX-License-Identifier: EPL-2.0

package signal

// Config holds the fixed Morse audio timing parameters. It is constructed
// once by DefaultConfig and passed explicitly into the Synthesizer and
// Analyzer; the values are not runtime-configurable.
type Config struct {
	// SampleRate of generated audio in Hz.
	SampleRate int
	// Frequency of the keyed tone in Hz.
	Frequency float64
	// DotDuration in seconds. A dash lasts three dots.
	DotDuration float64
	// DashDuration in seconds.
	DashDuration float64
	// SymbolGap is the silence after every dot or dash, in seconds.
	SymbolGap float64
	// WordGap is the silence between words, in seconds.
	WordGap float64
}

// DefaultConfig returns the standard timing: 44.1 kHz, 800 Hz tone,
// 0.1 s dot, the dash three times the dot, one dot of silence after
// each symbol and a 0.7 s word gap.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		Frequency:    800.0,
		DotDuration:  0.1,
		DashDuration: 0.3,
		SymbolGap:    0.1,
		WordGap:      0.7,
	}
}
