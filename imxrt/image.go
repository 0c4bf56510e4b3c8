package imxrt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/q0jt/go-imxrt/imxrt/flexspi"
	"github.com/q0jt/go-imxrt/imxrt/nor"
	"go.uber.org/zap"
)

// BlockOffset is where the ROM expects the block, relative to the FlexSPI
// base address.
const BlockOffset = 0x400

var ErrNotFound = errors.New("no serial NOR configuration block found")

// Format is an output encoding for a block.
type Format string

const (
	FormatBinary Format = "bin"
	FormatHex    Format = "hex"
)

// ParseFormat maps a flag value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "bin", "":
		return FormatBinary, nil
	case "hex", "ihex":
		return FormatHex, nil
	}
	return "", fmt.Errorf("unknown image format %q", s)
}

// WriteBlock encodes blk to w. Binary output is the raw block, to be
// programmed at addr; hex output carries addr in its records.
func WriteBlock(w io.Writer, blk nor.ConfigurationBlock, f Format, addr uint32) error {
	b, err := blk.MarshalBinary()
	if err != nil {
		return err
	}
	Logger().Debug("writing configuration block",
		zap.String("format", string(f)),
		zap.Uint32("address", addr),
		zap.Int("size", len(b)))
	switch f {
	case FormatBinary:
		_, err = w.Write(b)
		return err
	case FormatHex:
		return EncodeHex(w, addr, b)
	}
	return fmt.Errorf("unknown image format %q", f)
}

// FlashImage is a flash dump holding a serial NOR configuration block.
type FlashImage struct {
	// Base is the address of the first byte of the image, 0 for raw binaries.
	Base uint32
	// Offset of the block within the image.
	Offset int64
	Block  nor.ConfigurationBlock
}

// OpenFlashImage reads a .hex or raw binary flash image and locates its
// configuration block.
func OpenFlashImage(name string) (*FlashImage, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var base uint32
	if f, _ := ParseFormat(filepath.Ext(name)); f == FormatHex {
		base, b, err = HexFileToBinary(b)
		if err != nil {
			return nil, err
		}
	}
	return ReadFlashImage(b, base)
}

// ReadFlashImage locates the configuration block in b. The ROM location is
// tried first, then every offset carrying the FlexSPI tag.
func ReadFlashImage(b []byte, base uint32) (*FlashImage, error) {
	r := bytes.NewReader(b)
	img := &FlashImage{Base: base}
	offsets := append([]int64{BlockOffset}, FindConfigurationBlocks(b)...)
	for _, off := range offsets {
		blk, err := ReadConfigurationBlock(r, off)
		if err != nil {
			continue
		}
		if blk.MemoryConfig().DeviceType != flexspi.SerialNOR {
			Logger().Debug("skipping block for another device type",
				zap.Int64("offset", off),
				zap.Uint8("deviceType", uint8(blk.MemoryConfig().DeviceType)))
			continue
		}
		img.Offset = off
		img.Block = blk
		Logger().Debug("found configuration block",
			zap.Uint32("address", img.Address()),
			zap.Int64("offset", off))
		return img, nil
	}
	return nil, ErrNotFound
}

// Address returns the flash address of the block.
func (f *FlashImage) Address() uint32 {
	return f.Base + uint32(f.Offset)
}

// ReadConfigurationBlock decodes the block at off.
func ReadConfigurationBlock(r io.ReaderAt, off int64) (nor.ConfigurationBlock, error) {
	out := make([]byte, nor.Size)
	if _, err := r.ReadAt(out, off); err != nil {
		return nor.ConfigurationBlock{}, err
	}
	return nor.Decode(out)
}

// FindConfigurationBlocks returns every offset in b holding the FlexSPI tag
// with room for a full block behind it.
func FindConfigurationBlocks(b []byte) []int64 {
	magic := binary.LittleEndian.AppendUint32(nil, flexspi.Tag)
	r := make([]int64, 0)
	idx := 0
	for {
		offset := bytes.Index(b[idx:], magic)
		if offset == -1 {
			break
		}
		if idx+offset+nor.Size <= len(b) {
			r = append(r, int64(idx+offset))
		}
		idx += offset + 1
	}
	return r
}
