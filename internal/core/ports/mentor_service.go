package ports

import (
	"context"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// SearchMentorsInput carries the public mentor search parameters.
type SearchMentorsInput struct {
	Query     string
	Subjects  []string
	Tags      []string
	MinRating float64
	Page      int
	Limit     int
}

// ListMentorsResult is a page of mentors.
type ListMentorsResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PresenceTracker records ephemeral mentor presence.
type PresenceTracker interface {
	Heartbeat(ctx context.Context, mentorID string, at time.Time) error
	// Online reports, for each id, whether a heartbeat is still live.
	Online(ctx context.Context, mentorIDs []string) (map[string]bool, error)
}

type MentorService interface {
	Search(ctx context.Context, in SearchMentorsInput) (*ListMentorsResult, error)
	BestRated(ctx context.Context, limit int) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Heartbeat(ctx context.Context, p Principal) error
}
