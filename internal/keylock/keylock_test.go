package keylock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerialisesSameKey(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "steps_logs|2026-10-18|")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()
			// non-atomic read-modify-write, safe only under the lock
			c := counter
			time.Sleep(time.Microsecond)
			counter = c + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, l.Len())
}

func TestLocal_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
	unlockB() // idempotent

	assert.Equal(t, 1, l.Len())
}

func TestLocal_ContextCancelled(t *testing.T) {
	l := NewLocal()

	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.Equal(t, 0, l.Len())
}

func TestRedis_LockUnlock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := NewRedis(rdb, 2*time.Second)
	r.newToken = func() string { return "token-1" }
	r.backoff = time.Millisecond

	lockKey := redisLockKeyPrefix + "body_logs|2026-10-18|"
	mock.ExpectSetNX(lockKey, "token-1", 2*time.Second).SetVal(false)
	mock.ExpectSetNX(lockKey, "token-1", 2*time.Second).SetVal(true)
	mock.ExpectEval(unlockScript, []string{lockKey}, "token-1").SetVal(int64(1))

	unlock, err := r.Lock(context.Background(), "body_logs|2026-10-18|")
	require.NoError(t, err)
	unlock()
	unlock()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LockError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := NewRedis(rdb, 0)
	r.newToken = func() string { return "t" }

	mock.ExpectSetNX(redisLockKeyPrefix+"k", "t", DefaultLockTTL).SetErr(errors.New("connection refused"))

	_, err := r.Lock(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LockContextDone(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := NewRedis(rdb, time.Second)
	r.newToken = func() string { return "t" }
	r.backoff = 50 * time.Millisecond

	mock.ExpectSetNX(redisLockKeyPrefix+"k", "t", time.Second).SetVal(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := r.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
