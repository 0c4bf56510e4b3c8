package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/q0jt/go-imxrt/imxrt"
	"github.com/q0jt/go-imxrt/imxrt/nor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "fcbgen",
		Short: "i.MX RT serial NOR configuration block generator",
		Long: `fcbgen builds the serial NOR flash configuration block read by the
i.MX RT boot ROM, and inspects blocks found in existing flash images.

Serial clock codes are chip specific; this binary serves ` + strings.Join(nor.Families(), ", ") + `.
Rebuild with -tags <family> for other chips.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				imxrt.SetLogger(newLogger(cmd))
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = imxrt.Logger().Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(versionCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(inspectCmd())
	root.AddCommand(familiesCmd())
	return root
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.DebugLevel)
	return zap.New(core)
}

func version() string {
	v, c := buildVersion, buildCommit
	if v == "" {
		v = "dev"
	}
	if len(c) > 7 {
		c = c[:7]
	}
	if c == "" {
		return v
	}
	return v + "-" + c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fcbgen %s\nChip families: %s\nGo version: %s\n",
				version(), strings.Join(nor.Families(), ", "), runtime.Version())
		},
	}
}
