package nor

import (
	"fmt"
	"slices"
)

// SerialClockFrequency is the ipCmdSerialClkFreq field of the block.
//
// The set of frequencies and their codes are chip specific. Only the
// variants of the family selected at build time are declared.
type SerialClockFrequency uint8

// NoChange keeps the current serial clock.
const NoChange SerialClockFrequency = 0

// Families returns the chip families served by the compiled frequency table.
func Families() []string {
	return slices.Clone(families)
}

// Supports reports whether the compiled frequency table applies to family.
func Supports(family string) bool {
	return slices.Contains(families, family)
}

// FrequencyFromMHz returns the variant for a clock rate. Zero maps to
// NoChange.
func FrequencyFromMHz(mhz uint32) (SerialClockFrequency, bool) {
	i := slices.Index(frequencyMHz, mhz)
	if i < 0 {
		return NoChange, false
	}
	return SerialClockFrequency(i), true
}

// MHz returns the clock rate of f, or 0 for NoChange and unknown codes.
func (f SerialClockFrequency) MHz() uint32 {
	if int(f) >= len(frequencyMHz) {
		return 0
	}
	return frequencyMHz[f]
}

func (f SerialClockFrequency) String() string {
	if f == NoChange {
		return "NoChange"
	}
	if mhz := f.MHz(); mhz != 0 {
		return fmt.Sprintf("MHz%d", mhz)
	}
	return fmt.Sprintf("SerialClockFrequency(%d)", uint8(f))
}
