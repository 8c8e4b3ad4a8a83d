package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_MutualExclusion(t *testing.T) {
	_, client := newTestClient(t)
	locker := NewLocker(client, "test:")

	ctx := context.Background()
	unlock, err := locker.Lock(ctx, "u1", time.Minute)
	require.NoError(t, err)

	// A second acquisition parks until the first holder unlocks.
	acquired := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		unlock2, err := locker.Lock(ctx, "u1", time.Minute)
		if err != nil {
			t.Errorf("second lock failed: %v", err)
			return
		}
		close(acquired)
		_ = unlock2(ctx)
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while still held")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, unlock(ctx))
	wg.Wait()

	select {
	case <-acquired:
	default:
		t.Fatal("lock never acquired after release")
	}
}

func TestLocker_DifferentKeysDoNotContend(t *testing.T) {
	_, client := newTestClient(t)
	locker := NewLocker(client, "test:")

	ctx := context.Background()
	unlock1, err := locker.Lock(ctx, "u1", time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlock1(ctx) }()

	unlock2, err := locker.Lock(ctx, "u2", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, unlock2(ctx))
}

func TestLocker_ContextCancelWhileWaiting(t *testing.T) {
	_, client := newTestClient(t)
	locker := NewLocker(client, "test:")

	ctx := context.Background()
	unlock, err := locker.Lock(ctx, "u1", time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlock(ctx) }()

	waitCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(waitCtx, "u1", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
