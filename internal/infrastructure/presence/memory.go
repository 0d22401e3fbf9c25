// Package presence holds the process-local presence tracker used when Redis
// is disabled. It is only correct for a single instance.
package presence

import (
	"context"
	"sync"
	"time"
)

const defaultTTL = 2 * time.Minute

// Memory maps mentor ids to their last heartbeat.
type Memory struct {
	mu   sync.RWMutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Memory{seen: make(map[string]time.Time), ttl: ttl, now: time.Now}
}

func (m *Memory) Heartbeat(_ context.Context, mentorID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.seen[mentorID]; !ok || at.After(prev) {
		m.seen[mentorID] = at
	}
	m.sweep()
	return nil
}

func (m *Memory) Online(_ context.Context, mentorIDs []string) (map[string]bool, error) {
	cutoff := m.now().Add(-m.ttl)

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(mentorIDs))
	for _, id := range mentorIDs {
		last, ok := m.seen[id]
		out[id] = ok && last.After(cutoff)
	}
	return out, nil
}

// sweep drops expired entries. Caller holds mu.
func (m *Memory) sweep() {
	cutoff := m.now().Add(-m.ttl)
	for id, last := range m.seen {
		if !last.After(cutoff) {
			delete(m.seen, id)
		}
	}
}
