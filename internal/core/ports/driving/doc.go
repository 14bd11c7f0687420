// Package driving defines what the command line and the watch loop call
// into: running the pipeline, reporting its status and writing setup.
//
// The services package implements these interfaces.
package driving
