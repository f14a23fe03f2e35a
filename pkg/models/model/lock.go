package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval = time.Second / 5
	defaultLockExpire = 30 * time.Second
)

type RedisLock struct {
	*redis.RedisLock
}

// NewLock holds the lock for at most expire; zero selects the default.
func NewLock(rds *redis.Redis, lockName string, expire time.Duration) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
	l.SetExpire(expireSeconds(expire))
	return l
}

// expireSeconds rounds up, redis lock expiry has second granularity.
func expireSeconds(expire time.Duration) int {
	if expire <= 0 {
		expire = defaultLockExpire
	}
	return int((expire + time.Second - 1) / time.Second)
}

// Do runs f while holding the lock and always releases it afterwards.
func (l *RedisLock) Do(ctx context.Context, f func() error) error {
	if err := l.Lock(ctx); err != nil {
		return err
	}
	defer l.Unlock(ctx)

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquired, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

func (l *RedisLock) Unlock(ctx context.Context) {
	_, _ = l.ReleaseCtx(ctx)
}
