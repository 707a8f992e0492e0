package cmd

import (
	"encoding/json"
	"fmt"

	"codegap/core/config"
	"codegap/core/logger"

	"github.com/spf13/cobra"
)

var jsonOutput bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report record codes missing from the reference mapping",
	Long: `Loads the reference codes, prints them and their count, then scans the
records table and prints the set of importer, exporter and origin codes
absent from the reference. With --json the full report is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	svc, cleanup, err := buildService(cfg, logg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()

	reference, err := svc.Reference(ctx)
	if err != nil {
		return err
	}
	if !jsonOutput {
		fmt.Fprintln(out, reference)
		fmt.Fprintln(out, reference.Len())
	}

	report, err := svc.Scan(ctx, reference)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprintln(out, report.Missing)
	return nil
}
