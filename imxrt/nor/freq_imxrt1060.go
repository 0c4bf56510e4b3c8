//go:build imxrt1060 || imxrt1064 || !(imxrt1010 || imxrt1015 || imxrt1020 || imxrt1050 || imxrt500)

package nor

const (
	MHz30 SerialClockFrequency = iota + 1
	MHz50
	MHz60
	MHz75
	MHz80
	MHz100
	MHz120
	MHz133
	MHz166
)

var families = []string{"imxrt1060", "imxrt1064"}

// indexed by code
var frequencyMHz = []uint32{0, 30, 50, 60, 75, 80, 100, 120, 133, 166}
