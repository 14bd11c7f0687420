package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PraiseRunner = (*Pipeline)(nil)

// pipelineLock is the RunLock name guarding the load→save sequence.
const pipelineLock = "pipeline"

// recentLimit is how many processed IDs Status reports.
const recentLimit = 5

// Pipeline orchestrates one praise run:
// load processed set → extract new rows → merge each → save the union.
type Pipeline struct {
	config  driven.ConfigStore
	sources driven.RowSourceFactory
	decks   driven.Presentations
	tracker *Tracker
	lock    driven.RunLock
	now     func() time.Time
}

// NewPipeline creates a pipeline.
// lock is optional; when nil, overlapping runs are not prevented.
func NewPipeline(
	config driven.ConfigStore,
	sources driven.RowSourceFactory,
	decks driven.Presentations,
	kv driven.KeyValueStore,
	lock driven.RunLock,
) *Pipeline {
	return &Pipeline{
		config:  config,
		sources: sources,
		decks:   decks,
		tracker: NewTracker(kv),
		lock:    lock,
		now:     time.Now,
	}
}

// Run executes one pipeline pass. Every failure, panics included, ends in
// the Failed state with a descriptive message; nothing is returned as an
// error. The outcome is written to the operational log.
func (p *Pipeline) Run(ctx context.Context) (result *domain.RunResult) {
	result = &domain.RunResult{
		RunID:     uuid.NewString(),
		State:     domain.RunIdle,
		StartedAt: p.now(),
	}

	defer func() {
		if r := recover(); r != nil {
			fail(result, fmt.Errorf("unexpected panic: %v", r))
		}
		result.EndedAt = p.now()
		report(result)
	}()

	if err := p.execute(ctx, result); err != nil {
		fail(result, err)
		return result
	}

	result.State = domain.RunDone
	result.Message = domain.SuccessMessage(result.Added)
	return result
}

// execute walks the state machine, updating result.State as it goes.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (p *Pipeline) execute(ctx context.Context, result *domain.RunResult) error {
	// 1. Configuration
	result.State = domain.RunLoadingConfig
	settings, err := LoadPipelineSettings(p.config)
	if err != nil {
		return err
	}

	if p.lock != nil {
		ok, err := p.lock.Acquire(ctx, pipelineLock, result.RunID, settings.LockTTL)
		if err != nil {
			return fmt.Errorf("acquire run lock: %w", err)
		}
		if !ok {
			return domain.ErrRunInProgress
		}
		defer func() {
			if err := p.lock.Release(context.WithoutCancel(ctx), pipelineLock, result.RunID); err != nil {
				logger.Warn("Failed to release run lock: %v", err)
			}
		}()
	}

	// 2. Resources
	result.State = domain.RunOpeningResources
	source, err := p.sources.Open(ctx, settings.Source)
	if err != nil {
		return fmt.Errorf("%w: open %s data source: %w", domain.ErrResourceOpen, settings.Source.Kind, err)
	}
	defer source.Close()

	template, err := p.decks.OpenTemplate(ctx, settings.TemplateID)
	if err != nil {
		return fmt.Errorf("%w: open template presentation %s: %w", domain.ErrResourceOpen, settings.TemplateID, err)
	}

	target, err := p.decks.OpenTarget(ctx, settings.TargetID)
	if err != nil {
		return fmt.Errorf("%w: open target presentation %s: %w", domain.ErrResourceOpen, settings.TargetID, err)
	}

	// 3. Extraction
	result.State = domain.RunExtractingRows
	processed, err := p.tracker.Load(ctx)
	if err != nil {
		return err
	}

	raw, err := source.Rows(ctx)
	if err != nil {
		return fmt.Errorf("%w: read rows: %w", domain.ErrResourceOpen, err)
	}

	loc := settings.Source.Location
	if loc == nil {
		loc = source.Location()
	}
	rows := NewExtractor(settings.Layout, loc).Extract(raw, processed)
	logger.Debug("Extracted %d new of %d rows (%d already processed)", len(rows), len(raw), processed.Len())

	// 4. Merge
	result.State = domain.RunMerging
	merger := NewMerger(template, settings.Placeholders)
	added := domain.NewProcessedSet()
	for _, row := range rows {
		if err := p.renewLock(ctx, result.RunID, settings.LockTTL); err != nil {
			warnUnrecorded(added)
			return err
		}
		slideID, err := merger.Merge(ctx, target, row)
		if err != nil {
			warnUnrecorded(added)
			return err
		}
		added.Add(row.Timestamp)
		result.Added++
		result.AddedIDs = append(result.AddedIDs, row.Timestamp)
		logger.Debug("Appended slide %s for %s (%s)", slideID, row.TeacherName, row.Timestamp)
	}

	// 5. Persist
	result.State = domain.RunPersistingState
	if added.Len() == 0 {
		return nil
	}
	if err := p.tracker.Save(ctx, processed.Union(added)); err != nil {
		return err
	}

	return nil
}

// renewLock extends the run lease. It runs before every slide append.
func (p *Pipeline) renewLock(ctx context.Context, owner string, ttl time.Duration) error {
	if p.lock == nil {
		return nil
	}
	ok, err := p.lock.Acquire(ctx, pipelineLock, owner, ttl)
	if err != nil {
		return fmt.Errorf("renew run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: run lock was taken over during the merge", domain.ErrRunInProgress)
	}
	return nil
}

func warnUnrecorded(added *domain.ProcessedSet) {
	if added.Len() > 0 {
		logger.Warn("%d slide(s) appended in this run were not recorded and will be merged again next run",
			added.Len())
	}
}

// Status reports configuration and processed-set state.
// A configuration problem is reported in the status, not as an error.
func (p *Pipeline) Status(ctx context.Context) (*driving.PipelineStatus, error) {
	status := &driving.PipelineStatus{
		TemplateID: p.config.GetString(domain.KeyTemplateID),
		TargetID:   p.config.GetString(domain.KeyTargetID),
	}

	settings, err := LoadPipelineSettings(p.config)
	if err != nil {
		status.ConfigError = err
	} else {
		status.Source = settings.Source
	}

	processed, err := p.tracker.Load(ctx)
	if err != nil {
		return nil, err
	}
	ids := processed.Values()
	status.ProcessedCount = len(ids)
	if len(ids) > recentLimit {
		ids = ids[len(ids)-recentLimit:]
	}
	status.RecentIDs = ids

	return status, nil
}

// fail moves result to the Failed state.
func fail(result *domain.RunResult, err error) {
	result.FailedAt = result.State
	result.State = domain.RunFailed
	result.Err = err
	result.Message = domain.FailureMessage(err)
}

// report writes the run outcome to the operational log.
func report(result *domain.RunResult) {
	if result.Success() {
		logger.Info("SUCCESS run=%s %s", result.RunID, result.Message)
		return
	}

	logger.Error("FAILURE run=%s state=%s %s", result.RunID, result.FailedAt, result.Message)
	if errors.Is(result.Err, domain.ErrConfiguration) {
		logger.Info("Run 'praise setup' to configure the missing values.")
	}
}
