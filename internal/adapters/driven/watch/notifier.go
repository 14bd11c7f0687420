// Package watch reports changes to a local workbook file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure FileNotifier implements the interface.
var _ driven.ChangeNotifier = (*FileNotifier)(nil)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 500 * time.Millisecond

// FileNotifier calls back when one file is created, written or replaced.
// The parent directory is watched rather than the file so that editors
// that save by rename are still seen.
type FileNotifier struct {
	path     string
	debounce time.Duration
}

// NewFileNotifier creates a notifier for path.
// A non-positive debounce uses DefaultDebounce.
func NewFileNotifier(path string, debounce time.Duration) *FileNotifier {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileNotifier{path: filepath.Clean(path), debounce: debounce}
}

// Watch blocks until ctx is cancelled, calling onChange at most once per
// debounce window after the file changes.
func (n *FileNotifier) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(n.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching %s for changes", n.path)

	timer := time.NewTimer(n.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !n.relevant(event) {
				continue
			}
			logger.Debug("Workbook %s: %s", event.Op, event.Name)
			timer.Reset(n.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}

// relevant reports whether event changes the watched file's content.
func (n *FileNotifier) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != n.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
