// SPDX-License-Identifier: EPL-2.0

// Package audio defines the Source abstraction the format decoders share,
// plus the small pipeline that turns an arbitrary recording into the mono
// integer PCM the Morse signal analyzer consumes.
//
// A Source yields interleaved float32 samples in [-1, 1]. Format packages
// (formats/mp3, formats/vorbis, formats/aiff) each provide a Decoder that
// wraps their codec as a Source; the Registry keys them by file extension
// so the high-level decode path can pick one by filename:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	reg.Register("ogg", vorbis.Decoder{})
//
//	dec, ok := reg.Get("mp3")
//	src, err := dec.Decode(file)
//
// CollectPCM reads a Source to the end, averages multichannel audio down
// to mono, and scales the samples to a target amplitude:
//
//	samples, rate, err := audio.CollectPCM(src, 32767, 4096)
//
// WAV files skip this path entirely: formats/wav reads their integer
// samples directly, preserving the recorded bit depth exactly.
package audio
