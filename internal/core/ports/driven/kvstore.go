package driven

import "context"

// KeyValueStore is a durable string slot store scoped to this automation.
// Values survive across invocations.
type KeyValueStore interface {
	// Get returns the value for key.
	// Returns false and no error if the key has never been set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
