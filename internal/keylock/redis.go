package keylock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultLockTTL      = 5 * time.Second
	defaultRetryBackoff = 25 * time.Millisecond
	redisLockKeyPrefix  = "fittrack::lock::"
)

// deletes the lock only if it still carries our token
const unlockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// Redis is a lock shared by several processes writing to the same store.
// A lock expires after ttl even if its holder dies.
type Redis struct {
	rdb      *redis.Client
	ttl      time.Duration
	backoff  time.Duration
	newToken func() string
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &Redis{
		rdb:      rdb,
		ttl:      ttl,
		backoff:  defaultRetryBackoff,
		newToken: uuid.NewString,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := redisLockKeyPrefix + key
	token := r.newToken()

	for {
		acquired, err := r.rdb.SetNX(ctx, lockKey, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock [%s]: %w", key, err)
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff):
		}
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// use a fresh context, the caller's may already be cancelled
		unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := r.rdb.Eval(unlockCtx, unlockScript, []string{lockKey}, token).Err(); err != nil {
			log.Warnf("redis unlock [%s]: %s", key, err)
		}
	}, nil
}
