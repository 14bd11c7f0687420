package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Add slides for new form submissions",
	Long: `Reads the form responses, adds one slide to the target presentation for
every submission not merged before, and records the merged submissions.

Prints a single status line. The outcome is also written to the log file.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if praiseRunner == nil {
		return errors.New("pipeline not configured")
	}

	result := praiseRunner.Run(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)

	if !result.Success() {
		return errReported
	}
	return nil
}
