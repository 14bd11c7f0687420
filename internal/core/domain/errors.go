package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source kind or slide element.
	ErrUnsupportedType = errors.New("unsupported type")

	// Pipeline Errors.

	// ErrConfiguration indicates required configuration is missing.
	// The run aborts before any resource is opened.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceOpen indicates the data source, template or target
	// presentation could not be opened.
	ErrResourceOpen = errors.New("resource open error")

	// ErrMerge indicates appending or substituting a slide failed.
	// The run aborts without persisting the processed set.
	ErrMerge = errors.New("merge error")

	// ErrSerialization indicates the persisted processed set is unreadable.
	// Callers treat it as an empty set rather than failing the run.
	ErrSerialization = errors.New("serialization error")

	// ErrRunInProgress indicates another run holds the pipeline lock.
	ErrRunInProgress = errors.New("run in progress")
)
