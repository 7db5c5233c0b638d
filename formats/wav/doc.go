// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the mono PCM WAV containers the Morse
// codec produces. It uses the github.com/go-audio library for the
// container framing.
//
// # Supported layout
//
//   - PCM, uncompressed
//   - Mono (one channel)
//   - 8-bit or 16-bit samples
//   - Any sample rate
//
// The container records sample rate, channel count and bits-per-sample,
// which is how the high-level decoder configures itself without a
// pre-agreed sample width.
//
// # Reading
//
//	clip, err := wav.ReadFile("message.wav")
//	if err != nil {
//	    // wav.ErrNotWAV, wav.ErrUnsupportedPCM, or an I/O failure
//	}
//	// clip.Samples, clip.SampleRate, clip.BitDepth
//
// # Writing
//
//	err := wav.WriteFile("message.wav", 44100, 16, samples)
//
// # 8-bit samples
//
// WAV stores 8-bit PCM as unsigned offset-binary. This package converts
// at the boundary: Write adds the 128 offset, Read removes it, so callers
// always see signed values regardless of depth.
package wav
