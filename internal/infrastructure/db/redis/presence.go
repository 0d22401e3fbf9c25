package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPresenceTTL = 2 * time.Minute

// Presence tracks which mentors are online. Each heartbeat refreshes a key that
// expires after ttl; a mentor is online while the key exists.
// Key format: presence:mentor:<mentor_id>
type Presence struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPresence creates a Presence tracker wrapping the given Redis client.
func NewPresence(client *redis.Client, ttl time.Duration) *Presence {
	if ttl <= 0 {
		ttl = defaultPresenceTTL
	}
	return &Presence{client: client, ttl: ttl}
}

// Heartbeat records that mentorID was seen at at.
func (p *Presence) Heartbeat(ctx context.Context, mentorID string, at time.Time) error {
	if err := p.client.Set(ctx, presenceKey(mentorID), at.Unix(), p.ttl).Err(); err != nil {
		return fmt.Errorf("presence heartbeat: %w", err)
	}
	return nil
}

// Online reports which of mentorIDs have a live heartbeat, in one round trip.
func (p *Presence) Online(ctx context.Context, mentorIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(mentorIDs))
	if len(mentorIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(mentorIDs))
	for i, id := range mentorIDs {
		keys[i] = presenceKey(id)
	}
	vals, err := p.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("presence lookup: %w", err)
	}
	for i, v := range vals {
		out[mentorIDs[i]] = v != nil
	}
	return out, nil
}

func presenceKey(mentorID string) string {
	return "presence:mentor:" + mentorID
}
