package domain

import (
	"fmt"
	"time"
)

// RunState is a step of the pipeline state machine.
type RunState string

// Pipeline states. Done and Failed are terminal.
const (
	RunIdle             RunState = "idle"
	RunLoadingConfig    RunState = "loading_config"
	RunOpeningResources RunState = "opening_resources"
	RunExtractingRows   RunState = "extracting_rows"
	RunMerging          RunState = "merging"
	RunPersistingState  RunState = "persisting_state"
	RunDone             RunState = "done"
	RunFailed           RunState = "failed"
)

// IsTerminal returns true for Done and Failed.
func (s RunState) IsTerminal() bool {
	return s == RunDone || s == RunFailed
}

// RunResult is the outcome of one pipeline invocation.
type RunResult struct {
	// RunID uniquely identifies the invocation.
	RunID string

	// State is the terminal state reached.
	State RunState

	// FailedAt is the state that failed, empty on success.
	FailedAt RunState

	// Added is the number of slides appended to the target.
	Added int

	// AddedIDs are the submission timestamps merged in this run.
	AddedIDs []string

	// Message is the human-readable status line.
	Message string

	// Err is the failure cause, nil on success.
	Err error

	// StartedAt is when the run began.
	StartedAt time.Time

	// EndedAt is when the run reached a terminal state.
	EndedAt time.Time
}

// Success returns true if the run reached Done.
func (r *RunResult) Success() bool {
	return r.State == RunDone
}

// String returns the status line.
func (r *RunResult) String() string {
	return r.Message
}

// SuccessMessage formats the status line for a completed run.
func SuccessMessage(added int) string {
	noun := "slides"
	if added == 1 {
		noun = "slide"
	}
	return fmt.Sprintf("Added %d new praise %s.", added, noun)
}

// FailureMessage formats the status line for a failed run.
func FailureMessage(err error) string {
	return fmt.Sprintf("Praise run failed: %v", err)
}
