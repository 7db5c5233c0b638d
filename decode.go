// SPDX-License-Identifier: EPL-2.0

package morsewav

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/morsewav/audio"
	"github.com/ik5/morsewav/formats/aiff"
	"github.com/ik5/morsewav/formats/mp3"
	"github.com/ik5/morsewav/formats/vorbis"
	"github.com/ik5/morsewav/formats/wav"
	"github.com/ik5/morsewav/morse"
	"github.com/ik5/morsewav/signal"
)

// collectBufferSize is the read chunk for draining lossy-format sources.
const collectBufferSize = 4096

// Decoder turns Morse audio back into text. It is decode-only, the
// counterpart of Encoder.
//
// WAV input is read natively and the sample width recorded in the
// container configures the analyzer. MP3, Ogg Vorbis and AIFF recordings
// are accepted too, routed through the format registry by file extension.
type Decoder struct {
	cfg     signal.Config
	formats *audio.Registry
}

// NewDecoder returns a Decoder with all built-in formats registered.
func NewDecoder() *Decoder {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return &Decoder{
		cfg:     signal.DefaultConfig(),
		formats: reg,
	}
}

// Decode converts a Morse string to text. Unrecognized tokens are
// skipped silently; see morse.Decode.
func (d *Decoder) Decode(morseStr string) string {
	return morse.Decode(morseStr)
}

// DecodeFile reads an audio file, recovers the Morse transmission, and
// writes the decoded text to outPath. The sample width is taken from the
// container metadata, so no out-of-band agreement is needed.
func (d *Decoder) DecodeFile(inPath, outPath string) error {
	return d.decodeFile(inPath, outPath, 0)
}

// DecodeFileAs is DecodeFile with the sample width pinned by the caller.
// If a WAV container records a different bits-per-sample, it fails with
// signal.ErrSampleWidthMismatch before any analysis.
func (d *Decoder) DecodeFileAs(inPath, outPath string, width signal.Width) error {
	return d.decodeFile(inPath, outPath, width)
}

// decodeFile runs the full decode path. A zero width means self-configure
// from the container.
func (d *Decoder) decodeFile(inPath, outPath string, width signal.Width) error {
	morseStr, err := d.recoverMorse(inPath, width)
	if err != nil {
		return err
	}

	text := morse.Decode(morseStr)
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (d *Decoder) recoverMorse(inPath string, width signal.Width) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(inPath), "."))
	if ext == "wav" {
		return d.recoverFromWAV(inPath, width)
	}
	return d.recoverFromSource(inPath, ext, width)
}

func (d *Decoder) recoverFromWAV(inPath string, width signal.Width) (string, error) {
	clip, err := wav.ReadFile(inPath)
	if err != nil {
		return "", err
	}

	recorded, err := signal.WidthFromBits(clip.BitDepth)
	if err != nil {
		return "", err
	}
	if width == 0 {
		width = recorded
	} else if width != recorded {
		return "", fmt.Errorf("%w: container is %v, decoder expects %v",
			signal.ErrSampleWidthMismatch, recorded, width)
	}

	analyzer := signal.NewAnalyzer(d.cfg, width)
	return analyzer.Morse(clip.Samples, clip.SampleRate), nil
}

func (d *Decoder) recoverFromSource(inPath, ext string, width signal.Width) (string, error) {
	dec, ok := d.formats.Get(ext)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(inPath)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Lossy containers carry no usable bit-depth metadata; default to
	// 16-bit, the width every supported codec decodes to.
	if width == 0 {
		width = signal.Width16
	}

	samples, rate, err := audio.CollectPCM(src, width.MaxAmplitude(), collectBufferSize)
	if err != nil {
		return "", err
	}

	analyzer := signal.NewAnalyzer(d.cfg, width)
	return analyzer.Morse(samples, rate), nil
}
