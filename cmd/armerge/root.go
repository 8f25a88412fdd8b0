package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"omibyte.io/armerge/merger"
)

var (
	mergeOpts = struct {
		output         string
		llvmInstallDir string
		verbose        bool
	}{}

	rootCmd = &cobra.Command{
		Use:   "armerge",
		Short: "Merge LLVM static libraries into a single archive",
		Long: "Merge the static archives of an LLVM installation and the platform\n" +
			"C++ standard library into one combined static archive.",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			logger := initLogger(mergeOpts.verbose)

			options := merger.Options{
				Output:         mergeOpts.output,
				LLVMInstallDir: mergeOpts.llvmInstallDir,
				Environment:    merger.Environment(),
				Logger:         logger,
			}

			if err := merger.Merge(cmd.Context(), options); err != nil {
				logger.Error().Err(err).Msg("merging failed")
				os.Exit(1)
			}

			logger.Info().Str("output", mergeOpts.output).Msg("successfully created library")
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&mergeOpts.output, "output", "o", "", "output library path")
	rootCmd.Flags().StringVar(&mergeOpts.llvmInstallDir, "llvm-install-dir", "", "LLVM installation directory")
	rootCmd.Flags().BoolVarP(&mergeOpts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.MarkFlagRequired("output")
	rootCmd.MarkFlagRequired("llvm-install-dir")
}

func initLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "armerge").Logger()
}
