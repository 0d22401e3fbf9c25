package ports

import (
	"context"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// SessionFilter carries the query parameters for listing sessions.
// MentorID/LearnerID are enforced by the service layer for non-admins.
type SessionFilter struct {
	MentorID  string // optional
	LearnerID string // optional
	// ParticipantID matches either side; used for a user's own sessions.
	ParticipantID string
	Status        string // optional
	Page          int    // 1-based
	Limit         int    // 0 = no limit
}

// SessionTransition is a compare-and-set of a session's status.
type SessionTransition struct {
	SessionID   string
	From        domain.SessionStatus
	To          domain.SessionStatus
	ActorID     string
	At          time.Time
	MeetingLink string // optional, set on accept
}

// SessionRating is the once-only rating write for a completed session.
type SessionRating struct {
	SessionID string
	Rating    int
	Review    string
	At        time.Time
}

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// HasActiveOverlap reports whether mentorID has a requested or confirmed
	// session whose window intersects w.
	HasActiveOverlap(ctx context.Context, mentorID string, w domain.Window) (bool, error)
	// Transition applies t only if the session is still in t.From. It returns
	// domain.ErrInvalidTransition when the status changed underneath.
	Transition(ctx context.Context, t SessionTransition) (*domain.Session, error)
	// MarkRated records r only if the session is completed and not yet rated.
	// It returns domain.ErrNotRatable otherwise.
	MarkRated(ctx context.Context, r SessionRating) (*domain.Session, error)
	// RatingsForMentor returns every recorded rating for mentorID.
	RatingsForMentor(ctx context.Context, mentorID string) ([]int, error)
	List(ctx context.Context, filter SessionFilter) ([]*domain.Session, int64, error)
	Count(ctx context.Context) (int64, error)
	// AverageRating is the mean of all recorded session ratings, 0 when none.
	AverageRating(ctx context.Context) (float64, error)
}
