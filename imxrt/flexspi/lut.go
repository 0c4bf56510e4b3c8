package flexspi

// Opcode is a FlexSPI LUT instruction opcode.
type Opcode uint8

const (
	OpStop    Opcode = 0x00
	OpJmpOnCS Opcode = 0x1F

	OpCmdSDR       Opcode = 0x01 // transmit command code
	OpRaddrSDR     Opcode = 0x02 // transmit row address
	OpCaddrSDR     Opcode = 0x03 // transmit column address
	OpMode1SDR     Opcode = 0x04
	OpMode2SDR     Opcode = 0x05
	OpMode4SDR     Opcode = 0x06
	OpMode8SDR     Opcode = 0x07
	OpWriteSDR     Opcode = 0x08
	OpReadSDR      Opcode = 0x09
	OpLearnSDR     Opcode = 0x0A
	OpDataSizeSDR  Opcode = 0x0B
	OpDummySDR     Opcode = 0x0C
	OpDummyRWDSSDR Opcode = 0x0D

	OpCmdDDR       Opcode = OpCmdSDR | ddr
	OpRaddrDDR     Opcode = OpRaddrSDR | ddr
	OpCaddrDDR     Opcode = OpCaddrSDR | ddr
	OpMode1DDR     Opcode = OpMode1SDR | ddr
	OpMode2DDR     Opcode = OpMode2SDR | ddr
	OpMode4DDR     Opcode = OpMode4SDR | ddr
	OpMode8DDR     Opcode = OpMode8SDR | ddr
	OpWriteDDR     Opcode = OpWriteSDR | ddr
	OpReadDDR      Opcode = OpReadSDR | ddr
	OpLearnDDR     Opcode = OpLearnSDR | ddr
	OpDataSizeDDR  Opcode = OpDataSizeSDR | ddr
	OpDummyDDR     Opcode = OpDummySDR | ddr
	OpDummyRWDSDDR Opcode = OpDummyRWDSSDR | ddr
)

const ddr = 0x20

// Pads is the number of data lines an instruction drives.
type Pads uint8

const (
	Single Pads = 0x00
	Dual   Pads = 0x01
	Quad   Pads = 0x02
	Octal  Pads = 0x03
)

// Instr is a single 16 bit LUT instruction.
type Instr uint16

// Stop ends a sequence. It is the zero instruction.
const Stop Instr = 0

// NewInstr encodes an instruction as opcode[15:10] pads[9:8] operand[7:0].
func NewInstr(op Opcode, pads Pads, operand uint8) Instr {
	return Instr(uint16(op&0x3F)<<10 | uint16(pads&0x03)<<8 | uint16(operand))
}

func (i Instr) Opcode() Opcode {
	return Opcode(i >> 10)
}

func (i Instr) Pads() Pads {
	return Pads((i >> 8) & 0x03)
}

func (i Instr) Operand() uint8 {
	return uint8(i)
}

// InstrsPerSequence is the number of instructions in one LUT sequence.
const InstrsPerSequence = 8

// Sequence is one LUT entry. Unused trailing slots are Stop.
type Sequence [InstrsPerSequence]Instr

// SequenceIndex addresses a sequence in the lookup table.
type SequenceIndex uint8

// Sequence indices the boot ROM expects for serial NOR.
const (
	SeqRead           SequenceIndex = 0
	SeqReadStatus     SequenceIndex = 1
	SeqReadStatusXPI  SequenceIndex = 2
	SeqWriteEnable    SequenceIndex = 3
	SeqWriteEnableXPI SequenceIndex = 4
	SeqEraseSector    SequenceIndex = 5
	SeqEraseBlock     SequenceIndex = 8
	SeqPageProgram    SequenceIndex = 9
	SeqChipErase      SequenceIndex = 11
	SeqReadSFDP       SequenceIndex = 13
	SeqRestoreNoCmd   SequenceIndex = 14
	SeqExitNoCmd      SequenceIndex = 15
)

// SequencesPerTable is the number of sequences in a lookup table.
const SequencesPerTable = 16

// LookupTable holds the FlexSPI command sequences. It is 256 bytes.
type LookupTable [SequencesPerTable]Sequence

// NewLookupTable returns a table of Stop instructions.
func NewLookupTable() LookupTable {
	return LookupTable{}
}

// Command returns a copy of the table with seq placed at idx.
// Indices past the end of the table wrap, as the controller only decodes
// the low four bits.
func (t LookupTable) Command(idx SequenceIndex, seq Sequence) LookupTable {
	t[idx%SequencesPerTable] = seq
	return t
}

// At returns the sequence at idx.
func (t LookupTable) At(idx SequenceIndex) Sequence {
	return t[idx%SequencesPerTable]
}
