// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to run:
//
//   - ConfigStore: Application configuration (template and target IDs)
//   - RowSourceFactory: Opens the tabular data source of form submissions
//   - Presentations: Reads the template slide and opens the target deck
//   - KeyValueStore: Durable slot holding the processed set
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunLock: Mutual exclusion between overlapping runs
//   - ChangeNotifier: Triggers a run when a local workbook changes
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
