package driving

import (
	"context"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

// PraiseRunner runs the submission-to-slides pipeline.
type PraiseRunner interface {
	// Run executes one full pipeline pass.
	// It never returns an error: failures are reported in the result.
	Run(ctx context.Context) *domain.RunResult

	// Status reports configuration and processed-set state.
	Status(ctx context.Context) (*PipelineStatus, error)
}

// PipelineStatus is a snapshot of pipeline state between runs.
type PipelineStatus struct {
	// TemplateID is the configured template presentation.
	TemplateID string

	// TargetID is the configured target presentation.
	TargetID string

	// Source describes the configured data source.
	Source domain.SourceConfig

	// ConfigError is set when the configuration is incomplete.
	ConfigError error

	// ProcessedCount is the number of submissions already merged.
	ProcessedCount int

	// RecentIDs are the most recently processed submission timestamps.
	RecentIDs []string
}

// Watcher re-runs the pipeline on triggers until cancelled.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onResult after every run.
	Watch(ctx context.Context, onResult func(*domain.RunResult)) error
}
