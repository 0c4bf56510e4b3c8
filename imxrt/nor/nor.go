// Package nor builds the serial NOR configuration block the i.MX RT boot
// ROM reads from flash before any program code runs.
//
// A block is assembled as a chain of value-returning calls:
//
//	var SerialNORConfigurationBlock = nor.New(flexspi.New(lut)).
//		WithPageSize(256).
//		WithSectorSize(4096).
//		WithSerialClockFrequency(nor.MHz30)
//
// Unless otherwise set, every field is a zero bit pattern. Page size, sector
// size and clock frequency are not checked against the flash device; a wrong
// value shows up only as a board that does not boot.
//
// The serial clock encodings depend on the chip family, chosen with a build
// tag (imxrt1010, imxrt1015, imxrt1020, imxrt1050, imxrt1060, imxrt1064 or
// imxrt500). Without a tag the imxrt1060 table is used.
package nor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"structs"
	"unsafe"

	"github.com/q0jt/go-imxrt/imxrt/flexspi"
)

// Size is the ROM mandated size of a ConfigurationBlock in bytes.
const Size = 512

// Offsets of the serial NOR fields within the encoded block.
const (
	OffsetPageSize      = flexspi.Size
	OffsetSectorSize    = OffsetPageSize + 4
	OffsetSerialClkFreq = OffsetSectorSize + 4
	OffsetReserved      = OffsetSerialClkFreq + 4
	reservedSize        = Size - OffsetReserved
)

var ErrInvalidSize = errors.New("nor: invalid configuration block size")

// ConfigurationBlock is a serial NOR configuration block.
//
// This is the value to place at the start of the boot image, 0x400 bytes
// past the FlexSPI base, so the ROM can find it.
type ConfigurationBlock struct {
	_ structs.HostLayout

	memCfg        flexspi.ConfigurationBlock
	pageSize      uint32
	sectorSize    uint32
	serialClkFreq uint32
	_             [reservedSize]byte
}

// Layout check: either expression overflows when the struct is not Size bytes.
var (
	_ [Size - unsafe.Sizeof(ConfigurationBlock{})]struct{}
	_ [unsafe.Sizeof(ConfigurationBlock{}) - Size]struct{}
)

// New returns a serial NOR block embedding memCfg. The embedded device
// type is always set to serial NOR.
func New(memCfg flexspi.ConfigurationBlock) ConfigurationBlock {
	memCfg.DeviceType = flexspi.SerialNOR
	return ConfigurationBlock{memCfg: memCfg}
}

// WithPageSize returns a copy of b with the serial NOR page size set.
func (b ConfigurationBlock) WithPageSize(size uint32) ConfigurationBlock {
	b.pageSize = size
	return b
}

// WithSectorSize returns a copy of b with the serial NOR sector size set.
func (b ConfigurationBlock) WithSectorSize(size uint32) ConfigurationBlock {
	b.sectorSize = size
	return b
}

// WithSerialClockFrequency returns a copy of b with the IP command serial
// clock set.
func (b ConfigurationBlock) WithSerialClockFrequency(freq SerialClockFrequency) ConfigurationBlock {
	b.serialClkFreq = uint32(freq)
	return b
}

func (b ConfigurationBlock) MemoryConfig() flexspi.ConfigurationBlock {
	return b.memCfg
}

func (b ConfigurationBlock) PageSize() uint32 {
	return b.pageSize
}

func (b ConfigurationBlock) SectorSize() uint32 {
	return b.sectorSize
}

// SerialClockFrequency returns the raw field value. Blocks read from an
// image may hold codes outside the compiled family's table.
func (b ConfigurationBlock) SerialClockFrequency() SerialClockFrequency {
	return SerialClockFrequency(b.serialClkFreq)
}

// MarshalBinary returns the Size byte little-endian overlay the ROM reads.
func (b ConfigurationBlock) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size))
	if err := binary.Write(buf, binary.LittleEndian, &b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a block previously produced by MarshalBinary or
// read out of flash.
func (b *ConfigurationBlock) UnmarshalBinary(data []byte) error {
	blk, err := Decode(data)
	if err != nil {
		return err
	}
	*b = blk
	return nil
}

// Decode reads a block from the first Size bytes of data. The FlexSPI tag
// must be present; the device type is reported as found.
func Decode(data []byte) (ConfigurationBlock, error) {
	var blk ConfigurationBlock
	if len(data) < Size {
		return blk, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	memCfg, err := flexspi.Decode(data)
	if err != nil {
		return blk, err
	}
	blk.memCfg = memCfg
	blk.pageSize = binary.LittleEndian.Uint32(data[OffsetPageSize:])
	blk.sectorSize = binary.LittleEndian.Uint32(data[OffsetSectorSize:])
	blk.serialClkFreq = binary.LittleEndian.Uint32(data[OffsetSerialClkFreq:])
	return blk, nil
}
