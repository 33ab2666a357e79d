package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fieldtrack/pkg/logger"

	"github.com/go-redis/redis/v8"
)

const (
	defaultLockTTL     = 2 * time.Minute
	lockAcquireTimeout = 5 * time.Second
)

// unlockScript deletes the key only when this instance still owns it
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// DistributedLock coordinates background jobs across replicas
type DistributedLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
	IsHeld() bool
}

// RedisLock is a TTL-based Redis lock. The TTL must exceed the longest
// expected job run: there is no renewal, an expired lock simply lets the next
// replica take over.
type RedisLock struct {
	client *redis.Client
	key    string
	value  string // unique per instance so we never release someone else's lock
	ttl    time.Duration

	mu   sync.Mutex
	held bool
}

// NewRedisLock creates a lock on the given key.
// A nil client downgrades to single-instance mode: TryLock always succeeds.
func NewRedisLock(client *redis.Client, key string) *RedisLock {
	return &RedisLock{
		client: client,
		key:    key,
		value:  fmt.Sprintf("%s-%d", key, time.Now().UnixNano()),
		ttl:    defaultLockTTL,
	}
}

// TryLock attempts to acquire the lock without blocking on contention
func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	if l.client == nil {
		logger.Warn("redis client is nil, skipping distributed lock (running in single-instance mode)")
		l.setHeld(true)
		return true, nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, lockAcquireTimeout)
	defer cancel()

	acquired, err := l.client.SetNX(acquireCtx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		logger.DebugCtx(ctx, "lock %s already held by another instance", l.key)
		return false, nil
	}

	l.setHeld(true)
	logger.DebugCtx(ctx, "lock %s acquired", l.key)
	return true, nil
}

// Unlock releases the lock if this instance still owns it
func (l *RedisLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	held := l.held
	l.held = false
	l.mu.Unlock()

	if !held || l.client == nil {
		return nil
	}

	result, err := l.client.Eval(ctx, unlockScript, []string{l.key}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result.(int64) == 0 {
		logger.WarnCtx(ctx, "lock %s expired or was taken over before release", l.key)
	}
	return nil
}

// IsHeld reports whether this instance believes it holds the lock
func (l *RedisLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

func (l *RedisLock) setHeld(held bool) {
	l.mu.Lock()
	l.held = held
	l.mu.Unlock()
}
