// Command praise turns praise form submissions into slides.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/config/file"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/storage/sqlite"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/watch"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driving/cli"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/services"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(context.Background(), build); err != nil {
		os.Exit(1)
	}
}

// build wires the adapters to the core services.
func build(_ context.Context, opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locating config directory: %w", err)
		}
		dir = d
	}

	cfg, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logPath := cfg.GetString(domain.KeyLogFile)
	if logPath == "" {
		logPath = filepath.Join(dir, "logs", "praise.log")
	}
	logSink := logger.OpenFileSink(logPath, cfg.GetInt(domain.KeyLogMaxSizeMB))

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		logSink.Close()
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	logger.Debug("Config: %s, state: %s, log: %s", cfg.Path(), store.Path(), logPath)

	factory := connectors.NewFactory(cfg)
	pipeline := services.NewPipeline(cfg, factory, factory, store.KeyValueStore(), store.RunLock())

	return &cli.Services{
		Runner: pipeline,
		Setup:  services.NewSetupService(cfg, factory),
		NewWatcher: func() (driving.Watcher, error) {
			return newWatcher(cfg, pipeline)
		},
		Closer: closers{store, logSink},
	}, nil
}

// newWatcher builds the watch loop. Workbook sources are also watched for
// file changes.
func newWatcher(cfg driven.ConfigStore, runner driving.PraiseRunner) (driving.Watcher, error) {
	settings, err := services.LoadWatchSettings(cfg)
	if err != nil {
		return nil, err
	}

	var notifier driven.ChangeNotifier
	if settings.WorkbookPath != "" {
		notifier = watch.NewFileNotifier(settings.WorkbookPath, watch.DefaultDebounce)
		logger.Debug("Watching %s for changes", settings.WorkbookPath)
	}
	return services.NewWatcher(runner, settings.Interval, notifier), nil
}

// closers closes each element in order and joins the errors.
type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for _, cl := range c {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
