// SPDX-License-Identifier: EPL-2.0

// Package morsewav converts plain text to Morse code audio and back.
//
// The encode path maps text to a Morse symbol string, renders it as a
// keyed 800 Hz sine tone with standard timing, and writes a mono PCM WAV
// file. The decode path reads the audio back, recovers the on/off
// envelope with thresholding and debouncing, classifies tones and gaps
// by duration, and maps the symbols back to text.
//
// # Quick start
//
//	enc := morsewav.NewEncoder(signal.Width16)
//	if err := enc.EncodeFile("message.txt", "message.wav"); err != nil {
//	    // morse.ErrUnsupportedCharacter or an I/O failure
//	}
//
//	dec := morsewav.NewDecoder()
//	if err := dec.DecodeFile("message.wav", "decoded.txt"); err != nil {
//	    // ...
//	}
//
// Encoder and Decoder are separate types on purpose: each direction is a
// complete pipeline of its own, and neither can be asked to run the
// other.
//
// # Sample width
//
// Audio can be generated at 8 or 16 bits per sample. The width is
// recorded in the WAV header, and DecodeFile configures itself from it;
// DecodeFileAs pins a width instead and fails with
// signal.ErrSampleWidthMismatch if the container disagrees.
//
// # Input formats
//
// The encoder always writes WAV. The decoder additionally accepts Morse
// recordings saved as MP3, Ogg Vorbis or AIFF, chosen by file extension:
//
//	dec.DecodeFile("recording.mp3", "decoded.txt")
//
// # Lower-level access
//
// The subpackages expose each stage: morse for the text codec, signal
// for synthesis and analysis, formats/... for container I/O. See their
// documentation for details.
package morsewav
