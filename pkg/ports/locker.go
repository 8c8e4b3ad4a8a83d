package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates per-user dispatch across replicas when the
// flow store is shared (e.g. Redis). Single-instance deployments do not
// need one; the session manager's in-process locks suffice.
type DistributedLocker interface {
	// Lock blocks until the lock for key is acquired, the context is
	// canceled, or the implementation gives up. The returned UnlockFunc
	// must be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
