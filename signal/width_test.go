// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"testing"
)

func TestWidthFromBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits    int
		want    Width
		wantErr bool
	}{
		{8, Width8, false},
		{16, Width16, false},
		{24, 0, true},
		{32, 0, true},
		{0, 0, true},
		{12, 0, true},
	}

	for _, tt := range tests {
		got, err := WidthFromBits(tt.bits)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedWidth) {
				t.Errorf("WidthFromBits(%d) error = %v, want ErrUnsupportedWidth", tt.bits, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("WidthFromBits(%d) unexpected error: %v", tt.bits, err)
			continue
		}
		if got != tt.want {
			t.Errorf("WidthFromBits(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestWidth_MaxAmplitude(t *testing.T) {
	t.Parallel()

	if got := Width8.MaxAmplitude(); got != 127 {
		t.Errorf("Width8.MaxAmplitude() = %d, want 127", got)
	}
	if got := Width16.MaxAmplitude(); got != 32767 {
		t.Errorf("Width16.MaxAmplitude() = %d, want 32767", got)
	}
}

func TestWidth_String(t *testing.T) {
	t.Parallel()

	if got := Width8.String(); got != "8-bit" {
		t.Errorf("Width8.String() = %q, want %q", got, "8-bit")
	}
	if got := Width16.String(); got != "16-bit" {
		t.Errorf("Width16.String() = %q, want %q", got, "16-bit")
	}
}
