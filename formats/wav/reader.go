// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
)

// Clip is a fully-read mono PCM payload together with the container
// metadata a decoder needs to interpret it.
type Clip struct {
	// Samples holds signed amplitude values, one per time step.
	Samples []int
	// SampleRate in Hz, as recorded in the fmt chunk.
	SampleRate int
	// BitDepth is the recorded bits-per-sample, 8 or 16.
	BitDepth int
}

// Read parses a mono PCM WAV container and returns its samples and
// metadata. 8-bit payloads are stored offset-binary in the container and
// come back as signed values here.
func Read(rs io.ReadSeeker) (*Clip, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedPCM, bitDepth)
	}
	if buf.Format.NumChannels != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedPCM, buf.Format.NumChannels)
	}

	samples := buf.Data
	if bitDepth == 8 {
		for i := range samples {
			samples[i] -= 128
		}
	}

	return &Clip{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
	}, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Read(f)
}
