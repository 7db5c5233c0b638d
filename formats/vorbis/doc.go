// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input for the Morse signal analyzer,
// using github.com/jfreymuth/oggvorbis.
//
// Like MP3, Ogg Vorbis is a decode input only; the encoder always writes
// WAV. The decoder yields interleaved float32 samples which the decode
// path folds to mono before analysis.
package vorbis
