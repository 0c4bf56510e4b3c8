package imxrt

import (
	"bytes"
	"errors"
	"io"

	"github.com/marcinbor85/gohex"
)

// erased NOR flash reads back as 0xFF
const erased = 0xFF

const hexLineLength = 16

// HexFileToBinary flattens Intel HEX data into a single image. It returns
// the address of the first byte and the image, with gaps between segments
// filled as erased flash.
func HexFileToBinary(b []byte) (uint32, []byte, error) {
	r := bytes.NewReader(b)
	return intelHexToBinary(r)
}

func intelHexToBinary(r io.Reader) (uint32, []byte, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return 0, nil, err
	}
	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return 0, nil, errors.New("hex: no data segments")
	}
	base := segments[0].Address
	var end uint32
	for _, segment := range segments {
		if segment.Address < base {
			base = segment.Address
		}
		if e := segment.Address + uint32(len(segment.Data)); e > end {
			end = e
		}
	}
	return base, mem.ToBinary(base, end-base, erased), nil
}

// EncodeHex writes data as Intel HEX records starting at addr.
func EncodeHex(w io.Writer, addr uint32, data []byte) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(addr, data); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, hexLineLength)
}
