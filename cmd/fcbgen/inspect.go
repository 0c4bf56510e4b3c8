package main

import (
	"fmt"
	"io"

	"github.com/q0jt/go-imxrt/imxrt"
	"github.com/q0jt/go-imxrt/imxrt/flexspi"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var showLUT bool
	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Decode the configuration block in a .bin or .hex flash image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imxrt.OpenFlashImage(args[0])
			if err != nil {
				return err
			}
			printImage(cmd.OutOrStdout(), img, showLUT)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLUT, "lut", false, "Print non-empty lookup table sequences")
	return cmd
}

func printImage(w io.Writer, img *imxrt.FlashImage, showLUT bool) {
	blk := img.Block
	mem := blk.MemoryConfig()
	fmt.Fprintf(w, "- address: %#08x\n", img.Address())
	fmt.Fprintf(w, "- version: %#08x\n", mem.Version)
	fmt.Fprintf(w, "- deviceType: %d\n", mem.DeviceType)
	fmt.Fprintf(w, "- readSampleClkSrc: %d\n", mem.ReadSampleClkSrc)
	fmt.Fprintf(w, "- csHoldTime: %d\n", mem.CSHoldTime)
	fmt.Fprintf(w, "- csSetupTime: %d\n", mem.CSSetupTime)
	fmt.Fprintf(w, "- sflashPadType: %d\n", mem.SflashPadType)
	fmt.Fprintf(w, "- serialClkFreq: %d\n", mem.SerialClkFreq)
	fmt.Fprintf(w, "- sflashA1Size: %#x\n", mem.SflashA1Size)
	fmt.Fprintf(w, "- pageSize: %d\n", blk.PageSize())
	fmt.Fprintf(w, "- sectorSize: %d\n", blk.SectorSize())
	fmt.Fprintf(w, "- ipCmdSerialClkFreq: %v\n", blk.SerialClockFrequency())
	if !showLUT {
		return
	}
	for i, seq := range mem.LookupTable {
		if seq == (flexspi.Sequence{}) {
			continue
		}
		fmt.Fprintf(w, "- lut[%d]:", i)
		for _, in := range seq {
			if in == flexspi.Stop {
				break
			}
			fmt.Fprintf(w, " %#02x/%d/%#02x", in.Opcode(), in.Pads(), in.Operand())
		}
		fmt.Fprintln(w)
	}
}
