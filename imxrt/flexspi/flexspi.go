// Package flexspi describes the FlexSPI memory configuration block read by
// the i.MX RT boot ROM, along with the lookup table of bus sequences it
// carries.
//
// The block is a raw little-endian memory overlay. Field order and widths
// follow the ROM's flexspi_mem_config_t and must not change.
package flexspi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"structs"
	"unsafe"
)

// Size is the encoded size of a ConfigurationBlock in bytes.
const Size = 448

const (
	// Tag is "FCFB" read as a little-endian u32.
	Tag uint32 = 0x42464346
	// Version is v1.4.0.
	Version uint32 = 0x56010400
)

var (
	ErrInvalidSize = errors.New("flexspi: invalid configuration block size")
	ErrInvalidTag  = errors.New("flexspi: invalid configuration block tag")
)

// ReadSampleClockSource selects the clock used to sample read data.
type ReadSampleClockSource uint8

const (
	InternalLoopback   ReadSampleClockSource = 0x00
	LoopbackFromDQSPad ReadSampleClockSource = 0x01
	LoopbackFromSCKPad ReadSampleClockSource = 0x02
	FlashProvidedDQS   ReadSampleClockSource = 0x03
)

// DeviceType tells the ROM which kind of device the block configures.
type DeviceType uint8

const (
	SerialNOR  DeviceType = 0x01
	SerialNAND DeviceType = 0x02
)

// FlashPadType is the number of data pads wired to the flash device.
type FlashPadType uint8

const (
	FlashPadSingle FlashPadType = 1
	FlashPadDual   FlashPadType = 2
	FlashPadQuad   FlashPadType = 4
	FlashPadOctal  FlashPadType = 8
)

// LUTSequence references a run of LUT sequences.
type LUTSequence struct {
	Num uint8 // number of sequences
	ID  uint8 // first sequence index
	_   [2]byte
}

// ConfigurationBlock is the FlexSPI memory configuration block.
//
// Fields not set by New are zero. Callers assign fields directly and
// the value is copied into the device specific block that embeds it.
type ConfigurationBlock struct {
	_ structs.HostLayout

	Tag     uint32
	Version uint32
	_       [4]byte

	ReadSampleClkSrc    ReadSampleClockSource
	CSHoldTime          uint8
	CSSetupTime         uint8
	ColumnAddressWidth  uint8
	DeviceModeCfgEnable uint8
	DeviceModeType      uint8
	WaitTimeCfgCommands uint16
	DeviceModeSeq       LUTSequence
	DeviceModeArg       uint32
	ConfigCmdEnable     uint8
	ConfigModeType      [3]uint8
	ConfigCmdSeqs       [3]LUTSequence
	_                   [4]byte
	ConfigCmdArgs       [3]uint32
	_                   [4]byte

	ControllerMiscOption uint32
	DeviceType           DeviceType
	SflashPadType        FlashPadType
	SerialClkFreq        uint8
	LUTCustomSeqEnable   uint8
	_                    [8]byte

	SflashA1Size uint32
	SflashA2Size uint32
	SflashB1Size uint32
	SflashB2Size uint32

	CSPadSettingOverride   uint32
	SCLKPadSettingOverride uint32
	DataPadSettingOverride uint32
	DQSPadSettingOverride  uint32

	TimeoutInMs     uint32
	CommandInterval uint32
	DataValidTime   [2]uint16
	BusyOffset      uint16
	BusyBitPolarity uint16

	LookupTable  LookupTable
	LUTCustomSeq [12]LUTSequence
	_            [16]byte
}

// Layout check: either expression overflows when the struct is not Size bytes.
var (
	_ [Size - unsafe.Sizeof(ConfigurationBlock{})]struct{}
	_ [unsafe.Sizeof(ConfigurationBlock{}) - Size]struct{}
)

// New returns a block carrying the lookup table, the FCFB tag and version,
// 3 cycle chip select hold and setup times and a single pad bus.
func New(lut LookupTable) ConfigurationBlock {
	return ConfigurationBlock{
		Tag:              Tag,
		Version:          Version,
		ReadSampleClkSrc: InternalLoopback,
		CSHoldTime:       3,
		CSSetupTime:      3,
		SflashPadType:    FlashPadSingle,
		LookupTable:      lut,
	}
}

// MarshalBinary returns the little-endian overlay the ROM reads.
func (b ConfigurationBlock) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size))
	if err := binary.Write(buf, binary.LittleEndian, &b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a block and checks its tag.
func (b *ConfigurationBlock) UnmarshalBinary(data []byte) error {
	blk, err := Decode(data)
	if err != nil {
		return err
	}
	*b = blk
	return nil
}

// Decode reads a block from the first Size bytes of data.
func Decode(data []byte) (ConfigurationBlock, error) {
	var blk ConfigurationBlock
	if len(data) < Size {
		return blk, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	r := bytes.NewReader(data[:Size])
	if err := binary.Read(r, binary.LittleEndian, &blk); err != nil {
		return blk, err
	}
	if blk.Tag != Tag {
		return blk, fmt.Errorf("%w: %#08x", ErrInvalidTag, blk.Tag)
	}
	return blk, nil
}
