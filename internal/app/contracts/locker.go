package contracts

import (
	"context"
	"time"
)

// LockerService hands out short-lived redis locks. The report sweeper takes
// one per run so only one replica prunes the archive.
type LockerService interface {
	// TryLock returns the lock value to pass to Unlock when acquired.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
