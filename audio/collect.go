// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/morsewav/utils"
)

// CollectPCM drains src completely, folds it to mono, and converts every
// sample to a signed integer scaled to maxAmplitude.
//
// It returns the collected samples and the source's sample rate. The
// signal analyzer is rate-parameterized, so no resampling is done here;
// the recording's own rate is simply passed along.
func CollectPCM(src Source, maxAmplitude, bufferSize int) ([]int, int, error) {
	mono := NewMonoMixer(src)

	// Assume about a second of audio up front; append grows from there.
	pcm := make([]int, 0, src.SampleRate())
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToPCM(buf[i], maxAmplitude))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return pcm, src.SampleRate(), nil
}
