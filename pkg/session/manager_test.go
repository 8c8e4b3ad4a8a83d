package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankery/rankery/pkg/ports"
)

func TestWithLock_SerializesSameUser(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.WithLock(ctx, "u1", func(ctx context.Context) error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "same-user sections must never overlap")
}

func TestWithLock_DifferentUsersRunConcurrently(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	release := make(chan struct{})
	holding := make(chan struct{})

	go func() {
		_ = m.WithLock(ctx, "u1", func(ctx context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	done := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "u2", func(ctx context.Context) error {
			close(done)
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different users must not contend for the same lock")
	}
	close(release)
}

func TestWithLock_EntriesAreReclaimed(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	require.NoError(t, m.WithLock(ctx, "u1", func(ctx context.Context) error { return nil }))

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.locks, "lock entries must be dropped at refcount zero")
}

func TestWithLock_PropagatesError(t *testing.T) {
	m := NewManager()
	boom := errors.New("boom")

	err := m.WithLock(context.Background(), "u1", func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

// recordingLocker counts distributed acquisitions and releases.
type recordingLocker struct {
	mu       sync.Mutex
	locked   int
	unlocked int
	failWith error
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failWith != nil {
		return nil, l.failWith
	}
	l.locked++
	return func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocked++
		return nil
	}, nil
}

func TestWithLock_DistributedLocker(t *testing.T) {
	locker := &recordingLocker{}
	m := NewManager(WithLocker(locker))

	require.NoError(t, m.WithLock(context.Background(), "u1", func(ctx context.Context) error { return nil }))

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Equal(t, 1, locker.locked)
	assert.Equal(t, 1, locker.unlocked)
}

func TestWithLock_DistributedLockFailure(t *testing.T) {
	locker := &recordingLocker{failWith: errors.New("redis gone")}
	m := NewManager(WithLocker(locker))

	err := m.WithLock(context.Background(), "u1", func(ctx context.Context) error {
		t.Fatal("fn must not run when the distributed lock fails")
		return nil
	})
	assert.Error(t, err)
}
