package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep adding slides as submissions arrive",
	Long: `Runs the pipeline now, then again every watch.interval (default 5m).
When the source is a local workbook, a change to the file also triggers a run.

Runs never overlap. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if newWatcher == nil {
		return errors.New("watcher not configured")
	}

	w, err := newWatcher()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Println("Watching for new submissions. Press Ctrl+C to stop.")

	err = w.Watch(ctx, func(result *domain.RunResult) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.EndedAt.Local().Format("15:04:05"), result.Message)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch stopped: %w", err)
	}
	return nil
}
