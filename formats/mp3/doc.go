// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input for the Morse signal analyzer, using
// github.com/hajimehoshi/go-mp3.
//
// MP3 is accepted as a decode input only: a Morse transmission recorded
// and saved as MP3 can be analyzed directly, without converting to WAV
// first. The encoder never produces MP3.
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//	// src yields float32 samples in [-1, 1]; go-mp3 always outputs
//	// stereo, so fold through audio.MonoMixer before analysis.
//
// Lossy compression smears the tone envelope slightly, but the analyzer's
// debounce window absorbs it at normal bitrates.
package mp3
