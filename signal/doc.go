// SPDX-License-Identifier: EPL-2.0

// Package signal converts Morse strings to PCM audio and back.
//
// The Synthesizer keys an 800 Hz sine tone: 0.1 s for a dot, 0.3 s for
// a dash, with the standard gaps of silence between symbols, letters and
// words. The Analyzer inverts the process from the amplitude envelope:
// it thresholds samples at 1% of full scale, debounces the on/off state
// over a 1 ms window to reject sampling noise, and classifies each tone
// and gap by duration.
//
// # Generating audio
//
//	cfg := signal.DefaultConfig()
//	synth := signal.NewSynthesizer(cfg, signal.Width16)
//	samples := synth.Samples("... --- ...")
//
// # Recovering Morse
//
//	analyzer := signal.NewAnalyzer(cfg, signal.Width16)
//	code := analyzer.Morse(samples, cfg.SampleRate)
//
// The Analyzer is parameterized by sample rate, so audio from sources at
// other rates (an MP3 recording at 48 kHz, say) decodes without
// resampling. The sample width used to analyze must match the width the
// audio was generated at; container metadata carries the width so the
// high-level decoder can configure itself.
//
// Both types are stateless across calls and safe for concurrent use.
package signal
