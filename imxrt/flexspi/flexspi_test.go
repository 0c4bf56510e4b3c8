package flexspi_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"unsafe"

	"github.com/q0jt/go-imxrt/imxrt/flexspi"
)

func TestSize(t *testing.T) {
	if got := unsafe.Sizeof(flexspi.ConfigurationBlock{}); got != flexspi.Size {
		t.Errorf("unsafe.Sizeof: got %d, want %d", got, flexspi.Size)
	}
	if got := binary.Size(flexspi.ConfigurationBlock{}); got != flexspi.Size {
		t.Errorf("binary.Size: got %d, want %d", got, flexspi.Size)
	}
	if got := binary.Size(flexspi.LookupTable{}); got != 256 {
		t.Errorf("lookup table: got %d, want 256", got)
	}
}

func TestNew(t *testing.T) {
	b, err := flexspi.New(flexspi.NewLookupTable()).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != flexspi.Size {
		t.Fatalf("length: got %d", len(b))
	}
	if !bytes.Equal(b[:4], []byte("FCFB")) {
		t.Errorf("tag: got %q", b[:4])
	}
	if !bytes.Equal(b[4:8], []byte{0x00, 0x04, 0x01, 0x56}) {
		t.Errorf("version: got % x", b[4:8])
	}
	tests := []struct {
		name string
		off  int
		want byte
	}{
		{"readSampleClkSrc", 0x0c, 0},
		{"csHoldTime", 0x0d, 3},
		{"csSetupTime", 0x0e, 3},
		{"deviceType", 0x44, 0},
		{"sflashPadType", 0x45, 1},
	}
	for _, tt := range tests {
		if b[tt.off] != tt.want {
			t.Errorf("%s: got %#x, want %#x", tt.name, b[tt.off], tt.want)
		}
	}
}

func TestFieldOffsets(t *testing.T) {
	var blk flexspi.ConfigurationBlock
	blk.DeviceModeSeq = flexspi.LUTSequence{Num: 1, ID: 6}
	blk.ControllerMiscOption = 0x11223344
	blk.DeviceType = flexspi.SerialNAND
	blk.SflashPadType = flexspi.FlashPadQuad
	blk.SerialClkFreq = 7
	blk.SflashA1Size = 0x01000000
	blk.SflashB2Size = 0x02000000
	blk.DQSPadSettingOverride = 0xaabbccdd
	blk.CommandInterval = 0x55
	blk.BusyBitPolarity = 1
	blk.LUTCustomSeq[11] = flexspi.LUTSequence{Num: 2, ID: 9}

	b, err := blk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"deviceModeSeq", le.Uint32(b[0x14:]), 0x0601},
		{"controllerMiscOption", le.Uint32(b[0x40:]), 0x11223344},
		{"deviceType", uint32(b[0x44]), 2},
		{"sflashPadType", uint32(b[0x45]), 4},
		{"serialClkFreq", uint32(b[0x46]), 7},
		{"sflashA1Size", le.Uint32(b[0x50:]), 0x01000000},
		{"sflashB2Size", le.Uint32(b[0x5c:]), 0x02000000},
		{"dqsPadSettingOverride", le.Uint32(b[0x6c:]), 0xaabbccdd},
		{"commandInterval", le.Uint32(b[0x74:]), 0x55},
		{"busyBitPolarity", uint32(le.Uint16(b[0x7e:])), 1},
		{"lutCustomSeq[11]", le.Uint32(b[0x1ac:]), 0x0902},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %#x, want %#x", c.name, c.got, c.want)
		}
	}
}

func TestInstr(t *testing.T) {
	tests := []struct {
		op      flexspi.Opcode
		pads    flexspi.Pads
		operand uint8
		want    uint16
	}{
		{flexspi.OpCmdSDR, flexspi.Single, 0xeb, 0x04eb},
		{flexspi.OpRaddrSDR, flexspi.Quad, 24, 0x0a18},
		{flexspi.OpDummySDR, flexspi.Quad, 6, 0x3206},
		{flexspi.OpReadSDR, flexspi.Quad, 4, 0x2604},
		{flexspi.OpCmdDDR, flexspi.Octal, 0xee, 0x87ee},
		{flexspi.OpStop, flexspi.Single, 0, 0},
	}
	for _, tt := range tests {
		i := flexspi.NewInstr(tt.op, tt.pads, tt.operand)
		if uint16(i) != tt.want {
			t.Errorf("%#x/%d/%#x: got %#04x, want %#04x", tt.op, tt.pads, tt.operand, uint16(i), tt.want)
		}
		if i.Opcode() != tt.op || i.Pads() != tt.pads || i.Operand() != tt.operand {
			t.Errorf("%#04x: decoded %#x/%d/%#x", uint16(i), i.Opcode(), i.Pads(), i.Operand())
		}
	}
}

func TestLookupTablePlacement(t *testing.T) {
	seq := flexspi.Sequence{
		flexspi.NewInstr(flexspi.OpCmdSDR, flexspi.Single, 0xeb),
		flexspi.NewInstr(flexspi.OpRaddrSDR, flexspi.Quad, 0x18),
		flexspi.NewInstr(flexspi.OpDummySDR, flexspi.Quad, 0x06),
		flexspi.NewInstr(flexspi.OpReadSDR, flexspi.Quad, 0x04),
	}
	empty := flexspi.NewLookupTable()
	lut := empty.Command(flexspi.SeqPageProgram, seq)
	if empty.At(flexspi.SeqPageProgram) != (flexspi.Sequence{}) {
		t.Errorf("Command modified receiver")
	}

	b, err := flexspi.New(lut).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	off := 0x80 + 16*int(flexspi.SeqPageProgram)
	want := []byte{0xeb, 0x04, 0x18, 0x0a, 0x06, 0x32, 0x04, 0x26}
	if !bytes.Equal(b[off:off+8], want) {
		t.Errorf("sequence bytes: got % x, want % x", b[off:off+8], want)
	}
	if !bytes.Equal(b[off+8:off+16], make([]byte, 8)) {
		t.Errorf("trailing instructions not stop: % x", b[off+8:off+16])
	}
	if !bytes.Equal(b[0x80:off], make([]byte, off-0x80)) {
		t.Errorf("other sequences not empty")
	}
}

func TestDecode(t *testing.T) {
	want := flexspi.New(flexspi.NewLookupTable().Command(flexspi.SeqRead, flexspi.Sequence{
		flexspi.NewInstr(flexspi.OpCmdSDR, flexspi.Single, 0x03),
	}))
	want.SflashA1Size = 2 << 20
	want.DeviceType = flexspi.SerialNOR
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var got flexspi.ConfigurationBlock
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("decode: got %+v, want %+v", got, want)
	}

	if _, err := flexspi.Decode(b[:100]); !errors.Is(err, flexspi.ErrInvalidSize) {
		t.Errorf("short input: got %v", err)
	}
	b[0] = 'X'
	if _, err := flexspi.Decode(b); !errors.Is(err, flexspi.ErrInvalidTag) {
		t.Errorf("bad tag: got %v", err)
	}
}
