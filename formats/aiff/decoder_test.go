// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAIFFReader simulates the goaiff.Decoder PCM stream.
type mockAIFFReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *mockAIFFReader) Format() *goaudio.Format { return m.format }

func (m *mockAIFFReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("not an aiff file")))
	if !errors.Is(err, ErrNotAIFF) {
		t.Errorf("Decode() error = %v, want ErrNotAIFF", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockAIFFReader{
			format:  &goaudio.Format{NumChannels: 1, SampleRate: 44100},
			samples: []int{0, 16384, -16384, 32767},
		},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d samples, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{sampleRate: 22050, channels: 2}
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs := &readSeeker{data: []byte("FORM....AIFF")}

	buf := make([]byte, 4)
	n, err := rs.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read() = (%d, %v), want (4, nil)", n, err)
	}
	if string(buf) != "FORM" {
		t.Errorf("Read() = %q, want FORM", buf)
	}

	pos, err := rs.Seek(8, io.SeekStart)
	if err != nil || pos != 8 {
		t.Fatalf("Seek() = (%d, %v), want (8, nil)", pos, err)
	}

	n, err = rs.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read() after seek = (%d, %v), want (4, nil)", n, err)
	}
	if string(buf) != "AIFF" {
		t.Errorf("Read() after seek = %q, want AIFF", buf)
	}

	if _, err := rs.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek(-1) expected error")
	}
}
