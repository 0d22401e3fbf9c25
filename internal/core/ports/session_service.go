package ports

import (
	"context"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// BookSessionInput carries all data needed to request a session.
type BookSessionInput struct {
	MentorID        string
	LearnerID       string // empty = the requesting learner
	ScheduledAt     time.Time
	DurationMinutes int // 0 = domain.DefaultDurationMinutes
	Channel         string
	Notes           string
	Resources       []domain.Resource
	Price           *float64 // nil = derived from the mentor's hourly rate
}

// RateSessionInput carries a learner's rating of a completed session.
type RateSessionInput struct {
	SessionID string
	Rating    int
	Review    string
}

// ListSessionsInput carries the parameters for the list endpoint. MentorID and
// LearnerID are only honoured for admins.
type ListSessionsInput struct {
	MentorID  string
	LearnerID string
	Status    string
	Page      int
	Limit     int
}

// ListSessionsResult is returned by List.
type ListSessionsResult struct {
	Items      []*domain.Session
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Timeline splits a user's sessions around the current time.
type Timeline struct {
	Past     []*domain.Session
	Upcoming []*domain.Session
}

// SessionService defines the session lifecycle use cases.
type SessionService interface {
	Book(ctx context.Context, p Principal, in BookSessionInput) (*domain.Session, error)
	Accept(ctx context.Context, p Principal, sessionID, meetingLink string) (*domain.Session, error)
	Decline(ctx context.Context, p Principal, sessionID string) (*domain.Session, error)
	Cancel(ctx context.Context, p Principal, sessionID string) (*domain.Session, error)
	MarkCompleted(ctx context.Context, p Principal, sessionID string) (*domain.Session, error)
	Rate(ctx context.Context, p Principal, in RateSessionInput) (*domain.Session, error)
	Get(ctx context.Context, p Principal, sessionID string) (*domain.Session, error)
	List(ctx context.Context, p Principal, in ListSessionsInput) (*ListSessionsResult, error)
	Timeline(ctx context.Context, p Principal) (*Timeline, error)
}

// RatingAggregator keeps a mentor's derived rating in line with their rated sessions.
type RatingAggregator interface {
	Recompute(ctx context.Context, mentorID string) (domain.RatingSummary, error)
}

// RecomputeScheduler retries a failed recomputation out of band.
type RecomputeScheduler interface {
	Schedule(mentorID string)
}

// BookingLocker serializes bookings per mentor. The returned release func must
// be called exactly once.
type BookingLocker interface {
	Lock(ctx context.Context, mentorID string) (release func(), err error)
}
