package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/api/metrics"
	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// SessionService owns the session lifecycle: booking, status transitions and rating.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	locker   ports.BookingLocker
	ratings  ports.RatingAggregator
	retry    ports.RecomputeScheduler
	log      zerolog.Logger
	now      func() time.Time
	// lockBudget bounds the work done while holding the booking lock. It must
	// be shorter than the lock's lease.
	lockBudget time.Duration
}

// NewSessionService wires the lifecycle manager. retry may be nil, in which case
// a failed recomputation is only logged.
func NewSessionService(
	sessions ports.SessionRepository,
	users ports.UserRepository,
	locker ports.BookingLocker,
	ratings ports.RatingAggregator,
	retry ports.RecomputeScheduler,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		locker:   locker,
		ratings:  ratings,
		retry:    retry,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// WithLockBudget bounds the overlap check and insert that run under the booking
// lock. Zero leaves them bounded only by the caller's context.
func (s *SessionService) WithLockBudget(d time.Duration) *SessionService {
	s.lockBudget = d
	return s
}

// Book requests a session with a mentor. The conflict check and the insert run
// under the mentor's booking lock.
func (s *SessionService) Book(ctx context.Context, p ports.Principal, in ports.BookSessionInput) (*domain.Session, error) {
	learnerID := in.LearnerID
	switch {
	case p.IsAdmin():
		if learnerID == "" {
			return nil, fmt.Errorf("book session: learner_id required: %w", domain.ErrInvalidInput)
		}
	case p.Role == domain.RoleLearner:
		if learnerID == "" {
			learnerID = p.ID
		}
		if learnerID != p.ID {
			return nil, fmt.Errorf("book session: %w", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("book session: %w", domain.ErrForbidden)
	}

	if in.MentorID == "" || in.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("book session: mentor_id and scheduled_at required: %w", domain.ErrInvalidInput)
	}
	if in.MentorID == learnerID {
		return nil, fmt.Errorf("book session: cannot book yourself: %w", domain.ErrInvalidInput)
	}
	duration := in.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}
	if duration < 1 || duration > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("book session: duration_minutes out of range: %w", domain.ErrInvalidInput)
	}
	channel := domain.Channel(strings.ToLower(in.Channel))
	if channel == "" {
		channel = domain.ChannelVideo
	}
	if !channel.Valid() {
		return nil, fmt.Errorf("book session: unknown channel %q: %w", in.Channel, domain.ErrInvalidInput)
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("book session: price must not be negative: %w", domain.ErrInvalidInput)
	}
	resources, err := cleanResources(in.Resources)
	if err != nil {
		return nil, fmt.Errorf("book session: %w", err)
	}

	mentor, err := s.users.FindByID(ctx, in.MentorID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, fmt.Errorf("book session: %w", domain.ErrMentorNotFound)
		}
		return nil, fmt.Errorf("book session: %w", err)
	}
	if mentor.Role != domain.RoleMentor {
		return nil, fmt.Errorf("book session: %w", domain.ErrMentorNotFound)
	}

	price := domain.PriceFor(mentorRate(mentor), duration)
	if in.Price != nil {
		price = *in.Price
	}

	release, err := s.locker.Lock(ctx, in.MentorID)
	if err != nil {
		return nil, fmt.Errorf("book session: lock mentor: %w", err)
	}
	defer release()

	lockedCtx := ctx
	if s.lockBudget > 0 {
		var cancel context.CancelFunc
		lockedCtx, cancel = context.WithTimeout(ctx, s.lockBudget)
		defer cancel()
	}

	window := domain.NewWindow(in.ScheduledAt.UTC(), duration)
	busy, err := s.sessions.HasActiveOverlap(lockedCtx, in.MentorID, window)
	if err != nil {
		return nil, lockedError(ctx, lockedCtx, "overlap check", err)
	}
	if busy {
		metrics.BookingConflictsTotal.Inc()
		s.log.Info().Str("mentor_id", in.MentorID).Time("scheduled_at", window.Start).Msg("booking conflict")
		return nil, domain.ErrConflict
	}

	now := s.now()
	session := &domain.Session{
		MentorID:        in.MentorID,
		LearnerID:       learnerID,
		ScheduledAt:     window.Start,
		DurationMinutes: duration,
		Status:          domain.StatusRequested,
		Channel:         channel,
		Notes:           in.Notes,
		Resources:       resources,
		Price:           price,
		CreatedAt:       now,
		UpdatedAt:       now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusRequested, At: now, ActorID: p.ID},
		},
	}
	if err := s.sessions.Create(lockedCtx, session); err != nil {
		s.log.Error().Err(err).Str("mentor_id", in.MentorID).Msg("failed to create session")
		return nil, lockedError(ctx, lockedCtx, "insert", err)
	}

	metrics.SessionsBookedTotal.WithLabelValues(string(channel)).Inc()
	s.log.Info().
		Str("session_id", session.ID).
		Str("mentor_id", session.MentorID).
		Str("learner_id", session.LearnerID).
		Time("scheduled_at", session.ScheduledAt).
		Msg("session requested")

	return session, nil
}

// lockedError wraps a failure from inside the booking lock. Running out of the
// lock budget while the caller is still waiting reports domain.ErrBusy.
func lockedError(ctx, lockedCtx context.Context, step string, err error) error {
	if errors.Is(lockedCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("book session: %s exceeded the lock budget: %w: %w", step, domain.ErrBusy, err)
	}
	return fmt.Errorf("book session: %s: %w", step, err)
}

func mentorRate(mentor *domain.User) float64 {
	if mentor.MentorProfile == nil {
		return 0
	}
	return mentor.MentorProfile.HourlyRate
}

// cleanResources trims titles and URLs and rejects entries without a URL.
func cleanResources(in []domain.Resource) ([]domain.Resource, error) {
	if len(in) > domain.MaxSessionResources {
		return nil, fmt.Errorf("at most %d resources: %w", domain.MaxSessionResources, domain.ErrInvalidInput)
	}
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]domain.Resource, 0, len(in))
	for _, r := range in {
		r.Title = strings.TrimSpace(r.Title)
		r.URL = strings.TrimSpace(r.URL)
		if r.URL == "" {
			return nil, fmt.Errorf("resource url required: %w", domain.ErrInvalidInput)
		}
		out = append(out, r)
	}
	return out, nil
}

// Accept confirms a requested session and optionally sets its meeting link.
func (s *SessionService) Accept(ctx context.Context, p ports.Principal, sessionID, meetingLink string) (*domain.Session, error) {
	return s.transition(ctx, p, sessionID, domain.StatusConfirmed, meetingLink, mentorOrAdmin, nil)
}

// Decline rejects a requested session.
func (s *SessionService) Decline(ctx context.Context, p ports.Principal, sessionID string) (*domain.Session, error) {
	return s.transition(ctx, p, sessionID, domain.StatusRejected, "", mentorOrAdmin, nil)
}

// Cancel cancels a confirmed session. Either participant may cancel.
func (s *SessionService) Cancel(ctx context.Context, p ports.Principal, sessionID string) (*domain.Session, error) {
	return s.transition(ctx, p, sessionID, domain.StatusCancelled, "", participant, nil)
}

// MarkCompleted completes a confirmed session once its start time has passed.
func (s *SessionService) MarkCompleted(ctx context.Context, p ports.Principal, sessionID string) (*domain.Session, error) {
	notBeforeStart := func(sess *domain.Session) error {
		if sess.ScheduledAt.After(s.now()) {
			return domain.ErrTooEarly
		}
		return nil
	}
	return s.transition(ctx, p, sessionID, domain.StatusCompleted, "", learnerOnly, notBeforeStart)
}

type authorizeFunc func(p ports.Principal, sess *domain.Session) bool

func mentorOrAdmin(p ports.Principal, sess *domain.Session) bool {
	return p.IsAdmin() || sess.MentorID == p.ID
}

func participant(p ports.Principal, sess *domain.Session) bool {
	return sess.HasParticipant(p.ID)
}

func learnerOnly(p ports.Principal, sess *domain.Session) bool {
	return sess.LearnerID == p.ID
}

// transition checks, in order, ownership, the state machine and the optional
// precondition, then applies the change as a compare-and-set on the status read.
func (s *SessionService) transition(
	ctx context.Context,
	p ports.Principal,
	sessionID string,
	to domain.SessionStatus,
	meetingLink string,
	authorize authorizeFunc,
	precondition func(*domain.Session) error,
) (*domain.Session, error) {
	op := "session " + string(to)

	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !authorize(p, sess) {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	}
	if !sess.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%s: %w (from %s to %s)", op, domain.ErrInvalidTransition, sess.Status, to)
	}
	if precondition != nil {
		if err := precondition(sess); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	updated, err := s.sessions.Transition(ctx, ports.SessionTransition{
		SessionID:   sess.ID,
		From:        sess.Status,
		To:          to,
		ActorID:     p.ID,
		At:          s.now(),
		MeetingLink: meetingLink,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.SessionTransitionsTotal.WithLabelValues(string(to)).Inc()
	s.log.Info().
		Str("session_id", sess.ID).
		Str("from", string(sess.Status)).
		Str("to", string(to)).
		Str("actor_id", p.ID).
		Msg("session status changed")

	return updated, nil
}

// Rate records the learner's rating of a completed session, then refreshes the
// mentor's derived rating. A failed refresh does not undo the rating; it is
// handed to the retry scheduler instead.
func (s *SessionService) Rate(ctx context.Context, p ports.Principal, in ports.RateSessionInput) (*domain.Session, error) {
	sess, err := s.sessions.FindByID(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("rate session: %w", err)
	}
	if sess.LearnerID != p.ID {
		return nil, fmt.Errorf("rate session: %w", domain.ErrForbidden)
	}
	if !domain.ValidRating(in.Rating) {
		return nil, fmt.Errorf("rate session: rating must be between %d and %d: %w",
			domain.MinRating, domain.MaxRating, domain.ErrInvalidInput)
	}
	if !sess.Ratable() {
		return nil, fmt.Errorf("rate session: %w", domain.ErrNotRatable)
	}

	rated, err := s.sessions.MarkRated(ctx, ports.SessionRating{
		SessionID: sess.ID,
		Rating:    in.Rating,
		Review:    strings.TrimSpace(in.Review),
		At:        s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("rate session: %w", err)
	}
	metrics.SessionsRatedTotal.Inc()

	if _, err := s.ratings.Recompute(ctx, sess.MentorID); err != nil {
		s.log.Warn().Err(err).Str("mentor_id", sess.MentorID).Msg("rating recompute failed, scheduling retry")
		if s.retry != nil {
			s.retry.Schedule(sess.MentorID)
		}
	}

	return rated, nil
}

// Get returns a session visible to p.
func (s *SessionService) Get(ctx context.Context, p ports.Principal, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !p.IsAdmin() && !sess.HasParticipant(p.ID) {
		return nil, fmt.Errorf("get session: %w", domain.ErrForbidden)
	}
	return sess, nil
}

// List returns a page of sessions. Non-admins only ever see their own sessions.
func (s *SessionService) List(ctx context.Context, p ports.Principal, in ports.ListSessionsInput) (*ports.ListSessionsResult, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := ports.SessionFilter{Status: in.Status, Page: page, Limit: limit}
	if p.IsAdmin() {
		filter.MentorID = in.MentorID
		filter.LearnerID = in.LearnerID
	} else {
		filter.ParticipantID = p.ID
	}

	items, total, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &ports.ListSessionsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Timeline splits the caller's sessions into past and upcoming.
func (s *SessionService) Timeline(ctx context.Context, p ports.Principal) (*ports.Timeline, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("timeline: missing principal: %w", domain.ErrForbidden)
	}
	items, _, err := s.sessions.List(ctx, ports.SessionFilter{ParticipantID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}

	now := s.now()
	tl := &ports.Timeline{Past: []*domain.Session{}, Upcoming: []*domain.Session{}}
	for _, sess := range items {
		if sess.ScheduledAt.Before(now) {
			tl.Past = append(tl.Past, sess)
		} else {
			tl.Upcoming = append(tl.Upcoming, sess)
		}
	}
	return tl, nil
}
