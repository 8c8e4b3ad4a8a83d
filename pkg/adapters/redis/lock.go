package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/rankery/rankery/pkg/ports"
)

// ErrLockAcquire is returned when the lock cannot be acquired.
var ErrLockAcquire = errors.New("failed to acquire distributed lock")

// unlockScript deletes the lock key only if we still own it.
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Locker implements ports.DistributedLocker using Redis SET NX PX.
type Locker struct {
	client *backend.Client
	prefix string
}

// NewLocker creates a Redis locker. The prefix namespaces lock keys.
func NewLocker(client *backend.Client, prefix string) *Locker {
	if prefix == "" {
		prefix = "rankery:"
	}
	return &Locker{client: client, prefix: prefix}
}

// Lock polls SET NX until the lock is acquired or the context ends.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	// Ownership token: only the holder may delete the key on unlock.
	val := strconv.FormatInt(time.Now().UnixNano(), 10)

	try := func() (ports.UnlockFunc, bool, error) {
		ok, err := l.client.SetNX(ctx, lockKey, val, ttl).Result()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		return func(ctx context.Context) error {
			return l.client.Eval(ctx, unlockScript, []string{lockKey}, val).Err()
		}, true, nil
	}

	// First attempt without waiting, then back off on a ticker.
	unlock, ok, err := try()
	if err != nil {
		return nil, err
	}
	if ok {
		return unlock, nil
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			unlock, ok, err := try()
			if err != nil {
				return nil, err
			}
			if ok {
				return unlock, nil
			}
		}
	}
}
