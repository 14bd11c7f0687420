// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The praise pipeline is split into:
//
//   - Extractor: raw rows → new SubmissionRows
//   - Merger: SubmissionRow → merged slide appended to the target
//   - Tracker: processed set load/save against a durable slot
//   - Pipeline: the orchestrator tying the three together
//
// Setup writes configuration and Watcher re-runs the pipeline on triggers.
//
// Services are pure Go with no CGO dependencies.
package services
