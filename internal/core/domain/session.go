package domain

import (
	"math"
	"time"
)

// SessionStatus represents the lifecycle state of a mentorship session.
type SessionStatus string

const (
	StatusRequested SessionStatus = "requested"
	StatusConfirmed SessionStatus = "confirmed"
	StatusRejected  SessionStatus = "rejected"
	StatusCancelled SessionStatus = "cancelled"
	StatusCompleted SessionStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// rejected, cancelled and completed are terminal.
var validTransitions = map[SessionStatus][]SessionStatus{
	StatusRequested: {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ActiveStatuses are the statuses that keep a mentor busy for the session window.
var ActiveStatuses = []SessionStatus{StatusRequested, StatusConfirmed}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the session still blocks the mentor's calendar.
func (s SessionStatus) IsActive() bool {
	return s == StatusRequested || s == StatusConfirmed
}

// Channel is the medium the session is held over.
type Channel string

const (
	ChannelVideo Channel = "video"
	ChannelAudio Channel = "audio"
	ChannelChat  Channel = "chat"
	ChannelLink  Channel = "link"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelVideo, ChannelAudio, ChannelChat, ChannelLink:
		return true
	}
	return false
}

const (
	DefaultDurationMinutes = 30
	MaxDurationMinutes     = 24 * 60
	MinRating              = 1
	MaxRating              = 5
	MaxSessionResources    = 10
)

// Window is the half-open interval [Start, End) during which a mentor is busy.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the conflict window for a session starting at start.
func NewWindow(start time.Time, durationMinutes int) Window {
	return Window{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

// Overlaps reports whether two half-open windows intersect. Windows that only
// touch at an endpoint do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Resource links material shared for a session.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PriceFor is the cost of a session of durationMinutes at hourlyRate, rounded
// to cents.
func PriceFor(hourlyRate float64, durationMinutes int) float64 {
	if hourlyRate <= 0 || durationMinutes <= 0 {
		return 0
	}
	return math.Round(hourlyRate*float64(durationMinutes)/60*100) / 100
}

// StatusHistoryEntry records a single status transition on a session.
type StatusHistoryEntry struct {
	Status  SessionStatus `json:"status"`
	At      time.Time     `json:"at"`
	ActorID string        `json:"actor_id,omitempty"`
}

// Session is the core aggregate root: a scheduled meeting between a mentor and a learner.
type Session struct {
	ID              string               `json:"id"`
	MentorID        string               `json:"mentor_id"`
	LearnerID       string               `json:"learner_id"`
	ScheduledAt     time.Time            `json:"scheduled_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          SessionStatus        `json:"status"`
	Channel         Channel              `json:"channel"`
	MeetingLink     string               `json:"meeting_link,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Resources       []Resource           `json:"resources,omitempty"`
	Price           float64              `json:"price"`
	Rating          int                  `json:"rating,omitempty"`
	Review          string               `json:"review,omitempty"`
	IsRated         bool                 `json:"is_rated"`
	RatedAt         *time.Time           `json:"rated_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	StatusHistory   []StatusHistoryEntry `json:"status_history"`
}

// Window returns the session's busy interval.
func (s *Session) Window() Window {
	return NewWindow(s.ScheduledAt, s.DurationMinutes)
}

// EndsAt is the exclusive end of the session.
func (s *Session) EndsAt() time.Time {
	return s.Window().End
}

// Ratable reports whether a rating may still be recorded.
func (s *Session) Ratable() bool {
	return s.Status == StatusCompleted && !s.IsRated
}

// HasParticipant reports whether userID is the mentor or the learner of the session.
func (s *Session) HasParticipant(userID string) bool {
	return userID != "" && (s.MentorID == userID || s.LearnerID == userID)
}
