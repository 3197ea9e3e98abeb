// Package cli wires the postprep commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/postprep/postprep/internal/logger"
)

// NewRootCmd builds the postprep command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "postprep",
		Short:        "Build and enrich LinkedIn post datasets",
		Long:         "postprep turns a saved LinkedIn activity page into a raw dataset, enriches each post with LLM-extracted metadata, and summarizes the result.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newExtractCmd(),
		newPreprocessCmd(),
		newStatsCmd(),
	)

	return cmd
}

// newLogger builds the runtime logger honoring --verbose.
func newLogger(cmd *cobra.Command) (logger.Logger, error) {
	lvl := zapcore.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		lvl = zapcore.DebugLevel
	}
	return logger.New(lvl)
}
