package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codegap/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envDir string

// RootCmd runs the gap check when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "codegap",
	Short: "Find trade record country codes missing from the reference mapping",
	Long: `codegap loads the country/region codes of a reference mapping table, scans
the importer, exporter and origin columns of a trade records table, and
prints the reference set, its size and the codes the mapping lacks.`,
	Args:          cobra.NoArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Console format at debug level for ISO8601 timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "Directory holding an optional .env file")
	RootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full report as JSON")
}
