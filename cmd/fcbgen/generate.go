package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/q0jt/go-imxrt/imxrt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func generateCmd() *cobra.Command {
	var (
		configPath string
		output     string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a configuration block from a pkl file",
		Example: `  fcbgen generate -c pkl/imxrt1060_evk.pkl -o fcb.bin
  fcbgen generate -c pkl/imxrt1060_evk.pkl -o fcb.hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == "" {
				format = filepath.Ext(output)
			}
			f, err := imxrt.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := imxrt.LoadConfig(cmd.Context(), configPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", configPath, err)
			}
			blk, err := imxrt.NewBlock(cfg)
			if err != nil {
				return err
			}
			addr := cfg.FlashBase + cfg.Offset

			err = writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return imxrt.WriteBlock(w, blk, f, addr)
			})
			if err != nil {
				return err
			}
			imxrt.Logger().Info("generated configuration block",
				zap.String("output", output),
				zap.Uint32("address", addr))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Pkl configuration module")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: bin or hex (default from output extension)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// writeOutput runs write against stdout, or against the named file when
// output is set. A file that could not be fully written is removed.
func writeOutput(stdout io.Writer, output string, write func(io.Writer) error) error {
	if output == "" || output == "-" {
		bw := bufio.NewWriter(stdout)
		if err := write(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(err, os.Remove(output))
	}
	return nil
}
