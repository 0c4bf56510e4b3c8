//go:build imxrt500

package nor

// There is no 75 MHz tier on this family.
const (
	MHz30 SerialClockFrequency = iota + 1
	MHz50
	MHz60
	MHz80
	MHz100
	MHz120
	MHz133
	MHz166
)

var families = []string{"imxrt500"}

// indexed by code
var frequencyMHz = []uint32{0, 30, 50, 60, 80, 100, 120, 133, 166}
