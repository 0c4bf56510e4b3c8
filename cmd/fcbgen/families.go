package main

import (
	"fmt"
	"strings"

	"github.com/q0jt/go-imxrt/imxrt/nor"
	"github.com/spf13/cobra"
)

// Upper bound for probing the compiled frequency table.
const maxFrequencyCode = 16

func familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "Print the chip families and serial clock codes in this build",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "families: %s\n", strings.Join(nor.Families(), ", "))
			for code := 0; code < maxFrequencyCode; code++ {
				f := nor.SerialClockFrequency(code)
				if code != 0 && f.MHz() == 0 {
					break
				}
				fmt.Fprintf(w, "  %d\t%v\n", code, f)
			}
		},
	}
}
