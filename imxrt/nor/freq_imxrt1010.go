//go:build imxrt1010 || imxrt1015 || imxrt1020 || imxrt1050

package nor

const (
	MHz30 SerialClockFrequency = iota + 1
	MHz50
	MHz60
	MHz75
	MHz80
	MHz100
	MHz133
)

var families = []string{"imxrt1010", "imxrt1015", "imxrt1020", "imxrt1050"}

// indexed by code
var frequencyMHz = []uint32{0, 30, 50, 60, 75, 80, 100, 133}
