package driven

import (
	"context"
	"time"
)

// RunLock provides lease-based mutual exclusion between pipeline runs.
type RunLock interface {
	// Acquire takes the named lease for owner until ttl elapses.
	// Returns false and no error if another owner holds a live lease.
	Acquire(ctx context.Context, name, owner string, ttl time.Duration) (bool, error)

	// Release gives up the lease if owner still holds it.
	Release(ctx context.Context, name, owner string) error
}
