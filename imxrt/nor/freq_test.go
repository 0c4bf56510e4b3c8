package nor_test

import (
	"testing"

	"github.com/q0jt/go-imxrt/imxrt/nor"
)

func TestFrequencyFromMHz(t *testing.T) {
	if f, ok := nor.FrequencyFromMHz(0); !ok || f != nor.NoChange {
		t.Errorf("0 MHz: got %v, %v", f, ok)
	}
	for _, mhz := range []uint32{30, 50, 60, 80, 100, 133} {
		f, ok := nor.FrequencyFromMHz(mhz)
		if !ok {
			t.Errorf("%d MHz: not found", mhz)
			continue
		}
		if f.MHz() != mhz {
			t.Errorf("%d MHz: round trip gave %d", mhz, f.MHz())
		}
	}
	if _, ok := nor.FrequencyFromMHz(42); ok {
		t.Errorf("42 MHz: unexpected match")
	}
}

func TestFrequencyString(t *testing.T) {
	tests := []struct {
		f    nor.SerialClockFrequency
		want string
	}{
		{nor.NoChange, "NoChange"},
		{nor.MHz30, "MHz30"},
		{nor.MHz133, "MHz133"},
		{0xff, "SerialClockFrequency(255)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", uint8(tt.f), got, tt.want)
		}
	}
}

func TestFamilies(t *testing.T) {
	fams := nor.Families()
	if len(fams) == 0 {
		t.Fatal("no families")
	}
	for _, f := range fams {
		if !nor.Supports(f) {
			t.Errorf("Supports(%q) = false", f)
		}
	}
	if nor.Supports("imxrt999") {
		t.Errorf("unknown family supported")
	}
	fams[0] = "changed"
	if nor.Supports("changed") {
		t.Errorf("Families returned shared slice")
	}
}
