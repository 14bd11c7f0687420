package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFileNotifier_FiresOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "responses.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	n := NewFileNotifier(path, 20*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- n.Watch(ctx, func() {
			calls.Add(1)
			cancel()
		})
	}()

	// Keep writing until the watcher is up and has reported a change.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("v2"), 0600)
		return calls.Load() > 0
	}, 4*time.Second, 50*time.Millisecond)

	require.NoError(t, <-done)
}

func TestFileNotifier_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "responses.xlsx")
	n := NewFileNotifier(path, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- n.Watch(ctx, func() { calls.Add(1) })
	}()

	for i := 0; i < 5; i++ {
		_ = os.WriteFile(filepath.Join(dir, "other.txt"), []byte{byte(i)}, 0600)
		time.Sleep(20 * time.Millisecond)
	}

	require.NoError(t, <-done)
	assert.Zero(t, calls.Load())
}

func TestFileNotifier_MissingDirectory(t *testing.T) {
	n := NewFileNotifier(filepath.Join(t.TempDir(), "gone", "responses.xlsx"), 0)

	err := n.Watch(context.Background(), func() {})

	assert.Error(t, err)
}

func TestFileNotifier_Relevant(t *testing.T) {
	n := NewFileNotifier("/data/responses.xlsx", 0)

	assert.True(t, n.relevant(fsnotify.Event{Name: "/data/responses.xlsx", Op: fsnotify.Write}))
	assert.True(t, n.relevant(fsnotify.Event{Name: "/data/./responses.xlsx", Op: fsnotify.Create}))
	assert.False(t, n.relevant(fsnotify.Event{Name: "/data/responses.xlsx", Op: fsnotify.Chmod}))
	assert.False(t, n.relevant(fsnotify.Event{Name: "/data/~$responses.xlsx", Op: fsnotify.Write}))
}

func TestNewFileNotifier_DefaultDebounce(t *testing.T) {
	assert.Equal(t, DefaultDebounce, NewFileNotifier("x.xlsx", 0).debounce)
}
