package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driving.Watcher = (*Watcher)(nil)

// Watcher re-runs the pipeline once at start, on every interval tick, and
// whenever the notifier reports a change. Runs never overlap: triggers that
// arrive while a run is in progress collapse into one follow-up run.
type Watcher struct {
	runner   driving.PraiseRunner
	interval time.Duration
	notifier driven.ChangeNotifier
}

// NewWatcher creates a watcher. notifier is optional.
// A non-positive interval uses DefaultWatchInterval.
func NewWatcher(runner driving.PraiseRunner, interval time.Duration, notifier driven.ChangeNotifier) *Watcher {
	if interval <= 0 {
		interval = domain.DefaultWatchInterval
	}
	return &Watcher{
		runner:   runner,
		interval: interval,
		notifier: notifier,
	}
}

// Watch blocks until ctx is cancelled or the notifier fails.
func (w *Watcher) Watch(ctx context.Context, onResult func(*domain.RunResult)) error {
	g, gctx := errgroup.WithContext(ctx)

	triggers := make(chan string, 1)
	fire := func(reason string) {
		select {
		case triggers <- reason:
		default: // a run is already pending
		}
	}
	fire("startup")

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				fire("interval")
			}
		}
	})

	if w.notifier != nil {
		g.Go(func() error {
			return w.notifier.Watch(gctx, func() { fire("change") })
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case reason := <-triggers:
				logger.Debug("Watch: running pipeline (%s)", reason)
				result := w.runner.Run(gctx)
				if onResult != nil {
					onResult(result)
				}
			}
		}
	})

	return g.Wait()
}
