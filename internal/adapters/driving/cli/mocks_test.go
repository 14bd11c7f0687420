package cli

import (
	"context"
	"errors"
	"time"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
)

// mockRunner implements driving.PraiseRunner for testing.
type mockRunner struct {
	result    *domain.RunResult
	status    *driving.PipelineStatus
	statusErr error
	runs      int
}

func (m *mockRunner) Run(_ context.Context) *domain.RunResult {
	m.runs++
	return m.result
}

func (m *mockRunner) Status(_ context.Context) (*driving.PipelineStatus, error) {
	return m.status, m.statusErr
}

// mockSetup implements driving.SetupService for testing.
type mockSetup struct {
	configured []map[string]string
	imported   []string
	importErr  error
	missing    []string
	failWith   error
}

func (m *mockSetup) Configure(values map[string]string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.configured = append(m.configured, values)
	for key := range values {
		m.remove(key)
	}
	return nil
}

func (m *mockSetup) ImportSetupSheet(_ context.Context) ([]string, error) {
	return m.imported, m.importErr
}

func (m *mockSetup) Missing() []string {
	return m.missing
}

func (m *mockSetup) remove(key string) {
	kept := m.missing[:0]
	for _, k := range m.missing {
		if k != key {
			kept = append(kept, k)
		}
	}
	m.missing = kept
}

// mockWatcher reports the given results, then returns err.
type mockWatcher struct {
	results []*domain.RunResult
	err     error
}

func (m *mockWatcher) Watch(_ context.Context, onResult func(*domain.RunResult)) error {
	for _, r := range m.results {
		onResult(r)
	}
	return m.err
}

func doneResult(added int) *domain.RunResult {
	return &domain.RunResult{
		State:   domain.RunDone,
		Added:   added,
		Message: domain.SuccessMessage(added),
		EndedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local),
	}
}

func failedResult() *domain.RunResult {
	err := domain.MissingKey(domain.KeyTemplateID)
	return &domain.RunResult{
		State:    domain.RunFailed,
		FailedAt: domain.RunLoadingConfig,
		Err:      err,
		Message:  domain.FailureMessage(err),
	}
}

var errBoom = errors.New("boom")

// withServices swaps in test services and restores the originals.
func withServices(runner driving.PraiseRunner, setup driving.SetupService, watcher driving.Watcher) func() {
	oldRunner, oldSetup, oldWatcher := praiseRunner, setupService, newWatcher
	praiseRunner = runner
	setupService = setup
	newWatcher = nil
	if watcher != nil {
		newWatcher = func() (driving.Watcher, error) { return watcher, nil }
	}
	return func() {
		praiseRunner, setupService, newWatcher = oldRunner, oldSetup, oldWatcher
	}
}
