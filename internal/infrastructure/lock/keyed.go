// Package lock provides the in-process booking lock used when Redis is not
// configured. It serializes callers per key within a single API instance.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// ErrTimeout is returned when a lock could not be acquired within the wait
// bound. It matches domain.ErrBusy.
var ErrTimeout = fmt.Errorf("keyed lock: timed out waiting for lock: %w", domain.ErrBusy)

type entry struct {
	ch   chan struct{} // buffered(1); holding the token means holding the lock
	refs int
}

// Keyed is a set of mutexes created on demand per key and dropped once no
// caller holds or waits for them.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
	wait  time.Duration
}

// NewKeyed returns a keyed lock. wait bounds how long Lock blocks; zero means
// only the caller's context does.
func NewKeyed(wait time.Duration) *Keyed {
	return &Keyed{locks: make(map[string]*entry), wait: wait}
}

// Lock blocks until the lock for key is held, the wait bound elapses or ctx is
// done.
func (k *Keyed) Lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	var timeout <-chan time.Time
	if k.wait > 0 {
		t := time.NewTimer(k.wait)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		k.unref(key, e)
		return nil, ctx.Err()
	case <-timeout:
		k.unref(key, e)
		return nil, ErrTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			k.unref(key, e)
		})
	}, nil
}

func (k *Keyed) unref(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *Keyed) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
