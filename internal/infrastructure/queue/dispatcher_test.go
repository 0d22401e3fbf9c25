package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub aggregator
// ---------------------------------------------------------------------------

type stubAggregator struct {
	mu       sync.Mutex
	failures int // number of calls that fail before succeeding
	calls    map[string]int
	done     chan string
}

func newStubAggregator(failures int) *stubAggregator {
	return &stubAggregator{failures: failures, calls: make(map[string]int), done: make(chan string, 16)}
}

func (a *stubAggregator) Recompute(_ context.Context, mentorID string) (domain.RatingSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[mentorID]++
	if a.calls[mentorID] <= a.failures {
		return domain.RatingSummary{}, errors.New("store unavailable")
	}
	a.done <- mentorID
	return domain.RatingSummary{Average: 4, Count: 1}, nil
}

func (a *stubAggregator) callCount(mentorID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[mentorID]
}

func startDispatcher(t *testing.T, agg *stubAggregator, opts Options) (*Dispatcher, context.CancelFunc) {
	t.Helper()
	d := NewDispatcher(agg, opts, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go d.Start(ctx)
	return d, cancel
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	agg := newStubAggregator(2)
	d, cancel := startDispatcher(t, agg, Options{Workers: 2, MaxAttempts: 5, Backoff: time.Millisecond})
	defer cancel()

	d.Schedule("m1")

	select {
	case id := <-agg.done:
		if id != "m1" {
			t.Fatalf("unexpected mentor %s", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("recompute never succeeded")
	}
	if n := agg.callCount("m1"); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	agg := newStubAggregator(100)
	d, cancel := startDispatcher(t, agg, Options{Workers: 1, MaxAttempts: 3, Backoff: time.Millisecond})
	defer cancel()

	d.Schedule("m1")

	deadline := time.Now().Add(2 * time.Second)
	for agg.callCount("m1") < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	if n := agg.callCount("m1"); n != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", n)
	}
}

func TestDispatcher_CoalescesPending(t *testing.T) {
	agg := newStubAggregator(0)
	// not started: everything stays pending
	d := NewDispatcher(agg, Options{Workers: 1}, zerolog.Nop())

	d.Schedule("m1")
	d.Schedule("m1")
	d.Schedule("m2")

	if n := len(d.workers[0]); n != 2 {
		t.Fatalf("expected 2 queued mentor ids, got %d", n)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(newStubAggregator(0), Options{Workers: 8}, zerolog.Nop())
	for _, id := range []string{"a", "m1", "65a0c1f2e4b0a1b2c3d4e5f6"} {
		first := d.shardIndex(id)
		if first < 0 || first >= 8 {
			t.Fatalf("index %d out of range", first)
		}
		for i := 0; i < 5; i++ {
			if d.shardIndex(id) != first {
				t.Fatalf("shard index for %q is not stable", id)
			}
		}
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	d := NewDispatcher(newStubAggregator(0), Options{Workers: 3}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
