package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/storage/memory"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driving/cli"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()

	svc, err := build(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)

	assert.NotNil(t, svc.Runner)
	assert.NotNil(t, svc.Setup)
	assert.FileExists(t, filepath.Join(dir, "data", "state.db"))

	// An unconfigured run fails without touching Google.
	result := svc.Runner.Run(context.Background())
	assert.False(t, result.Success())
	assert.ErrorIs(t, result.Err, domain.ErrConfiguration)

	require.NoError(t, svc.Closer.Close())
	log, err := os.ReadFile(filepath.Join(dir, "logs", "praise.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), "[ERROR] FAILURE")
}

func TestBuild_SetupPersists(t *testing.T) {
	dir := t.TempDir()

	svc, err := build(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	require.NoError(t, svc.Setup.Configure(map[string]string{domain.KeyTemplateID: "tmpl-1"}))
	require.NoError(t, svc.Closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tmpl-1")
}

func TestNewWatcher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     map[string]any
		wantErr bool
	}{
		{"sheets source", map[string]any{domain.KeySpreadsheetID: "sheet-1"}, false},
		{"workbook source", map[string]any{domain.KeyWorkbookPath: "/tmp/responses.xlsx"}, false},
		{"bad interval", map[string]any{domain.KeyWatchInterval: "often"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := newWatcher(memory.NewConfigStore(tt.cfg), nil)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, w)
		})
	}
}

type failingCloser struct{ err error }

func (f failingCloser) Close() error { return f.err }

func TestClosers(t *testing.T) {
	err := closers{failingCloser{}, failingCloser{context.Canceled}, failingCloser{context.DeadlineExceeded}}.Close()

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
