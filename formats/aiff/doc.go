// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF input for the Morse signal analyzer, using
// github.com/go-audio/aiff. 16-bit PCM only; AIFF is a decode input, the
// encoder always writes WAV.
package aiff
