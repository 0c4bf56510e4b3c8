// Package imxrt turns declarative descriptions of i.MX RT serial NOR boot
// configuration blocks into flash images, and reads blocks back out of
// existing images.
package imxrt

import (
	"context"
	"errors"
	"fmt"

	"github.com/q0jt/go-imxrt/imxrt/config"
	"github.com/q0jt/go-imxrt/imxrt/flexspi"
	"github.com/q0jt/go-imxrt/imxrt/nor"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedChip      = errors.New("chip is not served by this build")
	ErrUnsupportedFrequency = errors.New("serial clock frequency not available")
	ErrInvalidSequence      = errors.New("invalid lookup table sequence")
	ErrMissingConfig        = errors.New("missing configuration section")
)

// LoadConfig evaluates the pkl module at path.
func LoadConfig(ctx context.Context, path string) (*config.FcbConfig, error) {
	cfg, err := config.LoadFromPath(ctx, path)
	if err != nil {
		return nil, err
	}
	Logger().Debug("loaded configuration",
		zap.String("path", path),
		zap.Stringer("chip", cfg.Chip))
	return cfg, nil
}

// NewBlock builds the serial NOR block a configuration describes.
//
// The configured chip must be served by the serial clock table compiled
// into package nor. Sizes are copied as given.
func NewBlock(cfg *config.FcbConfig) (nor.ConfigurationBlock, error) {
	if cfg.FlexSPI == nil || cfg.Nor == nil {
		return nor.ConfigurationBlock{}, ErrMissingConfig
	}
	if !nor.Supports(cfg.Chip.String()) {
		return nor.ConfigurationBlock{}, fmt.Errorf("%w: %s (built for %v)",
			ErrUnsupportedChip, cfg.Chip, nor.Families())
	}
	freq, ok := nor.FrequencyFromMHz(cfg.Nor.SerialClockMHz)
	if !ok {
		return nor.ConfigurationBlock{}, fmt.Errorf("%w: %d MHz on %s",
			ErrUnsupportedFrequency, cfg.Nor.SerialClockMHz, cfg.Chip)
	}
	mem, err := newMemoryConfig(cfg.FlexSPI)
	if err != nil {
		return nor.ConfigurationBlock{}, err
	}
	blk := nor.New(mem).
		WithPageSize(cfg.Nor.PageSize).
		WithSectorSize(cfg.Nor.SectorSize).
		WithSerialClockFrequency(freq)
	Logger().Debug("built configuration block",
		zap.Stringer("chip", cfg.Chip),
		zap.Uint32("pageSize", blk.PageSize()),
		zap.Uint32("sectorSize", blk.SectorSize()),
		zap.Stringer("serialClock", freq))
	return blk, nil
}

func newMemoryConfig(c *config.FlexSPIConfig) (flexspi.ConfigurationBlock, error) {
	lut, err := newLookupTable(c.Sequences)
	if err != nil {
		return flexspi.ConfigurationBlock{}, err
	}
	mem := flexspi.New(lut)
	mem.ReadSampleClkSrc = flexspi.ReadSampleClockSource(c.ReadSampleClkSrc)
	mem.CSHoldTime = c.CsHoldTime
	mem.CSSetupTime = c.CsSetupTime
	mem.ColumnAddressWidth = c.ColumnAddressWidth
	mem.ControllerMiscOption = c.ControllerMiscOption
	mem.SflashPadType = flexspi.FlashPadType(c.SflashPadType)
	mem.SerialClkFreq = c.SerialClkFreq
	mem.SflashA1Size = c.SflashA1Size
	mem.SflashA2Size = c.SflashA2Size
	mem.SflashB1Size = c.SflashB1Size
	mem.SflashB2Size = c.SflashB2Size
	return mem, nil
}

func newLookupTable(seqs []*config.Sequence) (flexspi.LookupTable, error) {
	lut := flexspi.NewLookupTable()
	for _, s := range seqs {
		if s.Index >= flexspi.SequencesPerTable {
			return lut, fmt.Errorf("%w: index %d", ErrInvalidSequence, s.Index)
		}
		if len(s.Instrs) > flexspi.InstrsPerSequence {
			return lut, fmt.Errorf("%w: %d instructions at index %d",
				ErrInvalidSequence, len(s.Instrs), s.Index)
		}
		var seq flexspi.Sequence
		for i, in := range s.Instrs {
			seq[i] = flexspi.NewInstr(flexspi.Opcode(in.Opcode), flexspi.Pads(in.Pads), in.Operand)
		}
		lut = lut.Command(flexspi.SequenceIndex(s.Index), seq)
	}
	return lut, nil
}
