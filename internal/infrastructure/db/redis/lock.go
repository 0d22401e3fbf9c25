package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

const (
	defaultLockTTL  = 10 * time.Second
	defaultLockWait = 5 * time.Second
	lockRetryEvery  = 25 * time.Millisecond
	releaseTimeout  = 2 * time.Second
)

// ErrLockTimeout is returned when the booking lock could not be acquired in
// time. It matches domain.ErrBusy.
var ErrLockTimeout = fmt.Errorf("booking lock: timed out waiting for lock: %w", domain.ErrBusy)

// releaseScript deletes the key only if it still holds our token, so an expired
// lock taken over by another instance is never released by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// BookingLock is a per-mentor mutex shared by every API instance.
// Key format: lock:booking:<mentor_id>
type BookingLock struct {
	client       *redis.Client
	ttl          time.Duration
	wait         time.Duration
	onReleaseErr func(error)
}

// NewBookingLock creates a lock that expires after ttl and waits at most wait
// to be acquired. onReleaseErr, if non-nil, receives release failures.
func NewBookingLock(client *redis.Client, ttl, wait time.Duration, onReleaseErr func(error)) *BookingLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	if onReleaseErr == nil {
		onReleaseErr = func(error) {}
	}
	return &BookingLock{client: client, ttl: ttl, wait: wait, onReleaseErr: onReleaseErr}
}

// Lock acquires the lock for mentorID, polling until it is free, wait elapses
// or ctx ends.
func (l *BookingLock) Lock(ctx context.Context, mentorID string) (func(), error) {
	key := lockKey(mentorID)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, ErrLockTimeout
			}
			return nil, fmt.Errorf("booking lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrLockTimeout
			}
			return nil, ctx.Err()
		case <-time.After(lockRetryEvery):
		}
	}
}

func (l *BookingLock) release(key, token string) {
	// the caller's context may already be done
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.onReleaseErr(fmt.Errorf("booking lock release %s: %w", key, err))
	}
}

func lockKey(mentorID string) string {
	return "lock:booking:" + mentorID
}
