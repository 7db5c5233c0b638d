// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"strings"

	"github.com/ik5/morsewav/morse"
)

const (
	// activeDivisor sets the tone threshold: a sample is active when its
	// magnitude exceeds maxAmplitude/activeDivisor, i.e. 1% of full scale.
	activeDivisor = 100

	// debounceSeconds is how long a candidate active/inactive transition
	// must persist before it is committed. Shorter runs are discarded,
	// absorbing single-sample glitches near zero crossings.
	debounceSeconds = 0.001

	// wordGapSeconds and letterGapSeconds classify a confirmed silence
	// interval. The measured gaps are nominally 0.8 s (symbol gap plus
	// word gap) and 0.4 s (symbol gap plus letter gap); the bands sit
	// slightly below to absorb debounce-induced timing skew. Keep the
	// literals as they are unless the debounce window is recalibrated.
	wordGapSeconds   = 0.79
	letterGapSeconds = 0.39
)

// Analyzer recovers a Morse string from PCM samples. It thresholds the
// amplitude envelope, debounces state changes, and classifies each tone
// by duration and each silence gap by duration.
type Analyzer struct {
	cfg   Config
	width Width
}

// NewAnalyzer returns an Analyzer expecting samples of the given width.
func NewAnalyzer(cfg Config, width Width) *Analyzer {
	return &Analyzer{cfg: cfg, width: width}
}

// Morse scans samples recorded at sampleRate and returns the recovered
// Morse string.
//
// A tone shorter than the midpoint of the dot and dash durations is a
// dot, anything longer a dash. A silence of at least wordGapSeconds
// becomes a word boundary, at least letterGapSeconds a letter separator,
// and anything shorter is the implicit intra-symbol spacing.
//
// A tone or silence still open when the buffer ends is dropped. Audio
// produced by the Synthesizer always ends with a trailing gap, so nothing
// is lost there; truncated recordings lose at most their final event.
func (a *Analyzer) Morse(samples []int, sampleRate int) string {
	var sb strings.Builder

	threshold := a.width.MaxAmplitude() / activeDivisor
	window := int(float64(sampleRate) * debounceSeconds)
	dotDashSplit := (a.cfg.DotDuration + a.cfg.DashDuration) / 2

	inTone := false
	toneStart := 0
	silenceStart := -1
	debounce := 0

	for i, v := range samples {
		if v < 0 {
			v = -v
		}

		if v > threshold {
			if inTone {
				debounce = 0
				continue
			}
			debounce++
			if debounce < window {
				continue
			}
			inTone = true
			debounce = 0
			if silenceStart != -1 {
				gap := float64(i-silenceStart) / float64(sampleRate)
				switch {
				case gap >= wordGapSeconds:
					sb.WriteString(morse.WordBoundary)
				case gap >= letterGapSeconds:
					sb.WriteByte(' ')
				}
				silenceStart = -1
			}
			toneStart = i
		} else {
			if !inTone {
				debounce = 0
				continue
			}
			debounce++
			if debounce < window {
				continue
			}
			inTone = false
			debounce = 0
			tone := float64(i-toneStart) / float64(sampleRate)
			if tone < dotDashSplit {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('-')
			}
			silenceStart = i
		}
	}

	return sb.String()
}
