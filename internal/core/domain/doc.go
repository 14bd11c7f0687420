// Package domain defines the core business entities for praise.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SubmissionRow: One validated form submission
//   - ProcessedSet: Identifiers of submissions already merged
//   - TemplateSlide: The read-only slide every praise slide is copied from
//   - MergedSlide: A template slide with placeholders substituted
//   - RunResult: The outcome of one pipeline invocation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
