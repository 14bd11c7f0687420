package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// runLock implements driven.RunLock with one row per lease.
type runLock struct {
	store *Store
}

var _ driven.RunLock = (*runLock)(nil)

// Acquire takes the lease if it is free, expired, or already held by owner.
// The check and the write are a single statement.
func (l *runLock) Acquire(ctx context.Context, name, owner string, ttl time.Duration) (bool, error) {
	if name == "" || owner == "" || ttl <= 0 {
		return false, domain.ErrInvalidInput
	}

	now := l.store.now()
	res, err := l.store.db.ExecContext(ctx, `
		INSERT INTO run_locks (name, owner, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			owner = excluded.owner,
			expires_at = excluded.expires_at
		WHERE run_locks.expires_at <= ? OR run_locks.owner = excluded.owner
	`, name, owner, now.Add(ttl).UnixMilli(), now.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("acquiring lease %s: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("acquiring lease %s: %w", name, err)
	}
	return n > 0, nil
}

// Release drops the lease if owner still holds it.
func (l *runLock) Release(ctx context.Context, name, owner string) error {
	_, err := l.store.db.ExecContext(ctx, "DELETE FROM run_locks WHERE name = ? AND owner = ?", name, owner)
	if err != nil {
		return fmt.Errorf("releasing lease %s: %w", name, err)
	}
	return nil
}
