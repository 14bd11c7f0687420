package driven

import "context"

// ChangeNotifier reports changes to an underlying data source.
type ChangeNotifier interface {
	// Watch calls onChange after each change until ctx is cancelled.
	// Returns nil when ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
