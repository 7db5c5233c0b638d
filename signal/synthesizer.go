// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Synthesizer renders a Morse string into PCM samples: a sine tone per dot
// or dash with one symbol gap of silence after it, a letter gap after a
// single-space separator and a word gap after a space run of three or more.
type Synthesizer struct {
	cfg   Config
	width Width
}

// NewSynthesizer returns a Synthesizer producing samples scaled to the
// maximum amplitude of width.
func NewSynthesizer(cfg Config, width Width) *Synthesizer {
	return &Synthesizer{cfg: cfg, width: width}
}

// Samples renders morse into a signed PCM buffer at cfg.SampleRate.
// The buffer length is fully determined by the input, so it is sized
// up front in a single allocation. An empty input yields an empty buffer.
func (s *Synthesizer) Samples(morse string) []int {
	out := make([]int, 0, s.sampleCount(morse))

	i := 0
	for i < len(morse) {
		switch morse[i] {
		case '.':
			out = s.appendTone(out, s.cfg.DotDuration)
			out = appendSilence(out, s.cfg.SymbolGap, s.cfg.SampleRate)
			i++
		case '-':
			out = s.appendTone(out, s.cfg.DashDuration)
			out = appendSilence(out, s.cfg.SymbolGap, s.cfg.SampleRate)
			i++
		case ' ':
			run := 0
			for i < len(morse) && morse[i] == ' ' {
				run++
				i++
			}
			// Each dot/dash already carries one symbol gap, so a single
			// separator only has to complete the letter gap. Runs of two
			// never come out of the text codec and are ignored.
			switch {
			case run == 1:
				out = appendSilence(out, 3*s.cfg.SymbolGap, s.cfg.SampleRate)
			case run >= 3:
				out = appendSilence(out, s.cfg.WordGap, s.cfg.SampleRate)
			}
		default:
			i++
		}
	}

	return out
}

// appendTone appends a sine tone of the given duration, scaled to the
// maximum amplitude of the configured width. The phase restarts at zero
// for every tone.
func (s *Synthesizer) appendTone(dst []int, duration float64) []int {
	n := spanSamples(duration, s.cfg.SampleRate)
	step := 2 * math.Pi * s.cfg.Frequency / float64(s.cfg.SampleRate)
	amp := float64(s.width.MaxAmplitude())

	for i := 0; i < n; i++ {
		dst = append(dst, int(amp*math.Sin(step*float64(i))))
	}
	return dst
}

func appendSilence(dst []int, duration float64, sampleRate int) []int {
	n := spanSamples(duration, sampleRate)
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// sampleCount walks morse the same way Samples does and returns the
// exact output length.
func (s *Synthesizer) sampleCount(morse string) int {
	total := 0
	i := 0
	for i < len(morse) {
		switch morse[i] {
		case '.':
			total += spanSamples(s.cfg.DotDuration, s.cfg.SampleRate)
			total += spanSamples(s.cfg.SymbolGap, s.cfg.SampleRate)
			i++
		case '-':
			total += spanSamples(s.cfg.DashDuration, s.cfg.SampleRate)
			total += spanSamples(s.cfg.SymbolGap, s.cfg.SampleRate)
			i++
		case ' ':
			run := 0
			for i < len(morse) && morse[i] == ' ' {
				run++
				i++
			}
			switch {
			case run == 1:
				total += spanSamples(3*s.cfg.SymbolGap, s.cfg.SampleRate)
			case run >= 3:
				total += spanSamples(s.cfg.WordGap, s.cfg.SampleRate)
			}
		default:
			i++
		}
	}
	return total
}

func spanSamples(duration float64, sampleRate int) int {
	return int(duration * float64(sampleRate))
}
