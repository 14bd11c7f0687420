// Package cli implements the praise command line with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// skipServices marks commands that run without the composed services.
const skipServices = "skip-services"

var (
	version = "dev"

	verbose   bool
	configDir string

	praiseRunner driving.PraiseRunner
	setupService driving.SetupService
	newWatcher   func() (driving.Watcher, error)

	bootstrap Bootstrap
	closer    io.Closer
)

// errReported is returned when the command already told the user what went
// wrong; Execute only sets the exit status for it.
var errReported = errors.New("failure already reported")

// Options are the global flags the services are built from.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Services are the driving ports the commands call.
type Services struct {
	Runner driving.PraiseRunner
	Setup  driving.SetupService

	// NewWatcher builds the watch loop from the current configuration.
	NewWatcher func() (driving.Watcher, error)

	// Closer releases stores and log files after the command. Optional.
	Closer io.Closer
}

// Bootstrap builds the services once the global flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "praise",
	Short: "Turn praise form submissions into slides",
	Long: `praise reads teacher praise submissions from a form response sheet and
adds one personalised slide per new submission to a slide deck.

Each submission is merged once. Run it by hand, from a scheduler, or keep
it running with 'praise watch'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.praise)")
}

// SetVersion sets the version reported by 'praise version'.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. build is called before any command that
// needs services.
func Execute(ctx context.Context, build Bootstrap) error {
	bootstrap = build
	defer func() {
		if closer != nil {
			if err := closer.Close(); err != nil {
				logger.Warn("Failed to close resources: %v", err)
			}
			closer = nil
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || cmd.Annotations[skipServices] != "" || cmd.Name() == "help" {
		return nil
	}

	svc, err := bootstrap(cmd.Context(), Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return err
	}
	praiseRunner = svc.Runner
	setupService = svc.Setup
	newWatcher = svc.NewWatcher
	closer = svc.Closer
	return nil
}
