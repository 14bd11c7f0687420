package memory

import (
	"context"
	"sync"
	"time"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Ensure RunLock implements the interface.
var _ driven.RunLock = (*RunLock)(nil)

type lease struct {
	owner   string
	expires time.Time
}

// RunLock is an in-memory implementation of driven.RunLock.
// It only excludes runs within one process.
type RunLock struct {
	mu     sync.Mutex
	leases map[string]lease
	now    func() time.Time
}

// NewRunLock creates a new in-memory run lock.
func NewRunLock() *RunLock {
	return &RunLock{
		leases: make(map[string]lease),
		now:    time.Now,
	}
}

// Acquire takes the named lease for owner until ttl elapses.
func (l *RunLock) Acquire(_ context.Context, name, owner string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if cur, ok := l.leases[name]; ok && cur.owner != owner && now.Before(cur.expires) {
		return false, nil
	}
	l.leases[name] = lease{owner: owner, expires: now.Add(ttl)}
	return true, nil
}

// Release gives up the lease if owner still holds it.
func (l *RunLock) Release(_ context.Context, name, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cur, ok := l.leases[name]; ok && cur.owner == owner {
		delete(l.leases, name)
	}
	return nil
}
