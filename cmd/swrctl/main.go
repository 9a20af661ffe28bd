// Command swrctl analyses Touchstone files from the command line.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swrctl",
		Short: "Antenna SWR analysis for Touchstone files",
		Long: `swrctl reads 1-port (.s1p) and 2-port (.s2p) Touchstone files exported by
network analysers and reports SWR across the amateur bands.

Available commands:
  analyze - Per-band SWR summary for a file, with optional shift simulation
  bands   - Print the band catalog`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML band catalog (default: built-in amateur bands)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd(), newBandsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
