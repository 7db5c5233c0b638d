// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Write writes samples as a mono PCM WAV container at sampleRate. bitDepth
// must be 8 or 16; 8-bit samples are converted to the container's
// offset-binary representation on the way out.
func Write(ws io.WriteSeeker, sampleRate, bitDepth int, samples []int) error {
	if bitDepth != 8 && bitDepth != 16 {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedPCM, bitDepth)
	}

	data := samples
	if bitDepth == 8 {
		data = make([]int, len(samples))
		for i, v := range samples {
			data[i] = v + 128
		}
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteFile creates path and writes it with Write. A failed write can
// leave a truncated file behind; callers that care should remove it.
func WriteFile(path string, sampleRate, bitDepth int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Write(f, sampleRate, bitDepth, samples)
}
