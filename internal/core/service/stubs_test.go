package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	nextID    int
	ratingErr error // if set, SetMentorRating returns this error
	listErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.MentorProfile != nil {
		mp := *u.MentorProfile
		clone.MentorProfile = &mp
	}
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	c := cloneUser(user)
	if c.ID == "" {
		r.nextID++
		c.ID = fmt.Sprintf("u%d", r.nextID)
	}
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, upd ports.ProfileUpdate, at time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Interests != nil {
		u.Interests = upd.Interests
	}
	if upd.Goals != nil {
		u.Goals = upd.Goals
	}
	if m := upd.Mentor; m != nil && u.MentorProfile != nil {
		if m.Subjects != nil {
			u.MentorProfile.Subjects = m.Subjects
		}
		if m.Tags != nil {
			u.MentorProfile.Tags = m.Tags
		}
		if m.HourlyRate != nil {
			u.MentorProfile.HourlyRate = *m.HourlyRate
		}
		u.MentorProfile.Verified = false
	}
	u.UpdatedAt = at
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetMentorRating(_ context.Context, mentorID string, s domain.RatingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ratingErr != nil {
		return r.ratingErr
	}
	u, ok := r.users[mentorID]
	if !ok || u.MentorProfile == nil {
		return domain.ErrMentorNotFound
	}
	u.MentorProfile.Rating = s.Average
	u.MentorProfile.RatingCount = s.Count
	return nil
}

func (r *stubUserRepo) ApproveMentor(_ context.Context, mentorID string, at time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[mentorID]
	if !ok || !u.IsMentor() {
		return nil, domain.ErrMentorNotFound
	}
	u.MentorProfile.Verified = true
	u.MentorProfile.ApprovedAt = &at
	return cloneUser(u), nil
}

// ListMentors applies the filters the Mongo repo applies, except full-text search
// which is approximated with a substring match on the name.
func (r *stubUserRepo) ListMentors(_ context.Context, f ports.MentorFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var matched []*domain.User
	for _, u := range r.users {
		if !u.IsMentor() {
			continue
		}
		if f.Verified != nil && u.MentorProfile.Verified != *f.Verified {
			continue
		}
		if f.MinRating > 0 && u.MentorProfile.Rating < f.MinRating {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Query)) {
			continue
		}
		if len(f.Subjects) > 0 && countShared(f.Subjects, u.MentorProfile.Subjects) == 0 {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	sort.Slice(matched, func(i, j int) bool {
		if f.SortBy == "rating" && matched[i].MentorProfile.Rating != matched[j].MentorProfile.Rating {
			return matched[i].MentorProfile.Rating > matched[j].MentorProfile.Rating
		}
		return matched[i].ID < matched[j].ID
	})
	return paginate(matched, f.Page, f.Limit), int64(len(matched)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// stubSessionRepo mirrors the conditional writes of the Mongo repo: transitions
// and ratings only apply when the stored state still matches.
type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	nextID   int
	// overlapDelay widens the window between the overlap check and the insert.
	overlapDelay time.Duration
	ratingsErr   error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	clone := *s
	clone.StatusHistory = append([]domain.StatusHistoryEntry(nil), s.StatusHistory...)
	return &clone
}

func (r *stubSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = fmt.Sprintf("s%d", r.nextID)
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *stubSessionRepo) HasActiveOverlap(ctx context.Context, mentorID string, w domain.Window) (bool, error) {
	r.mu.Lock()
	busy := false
	for _, s := range r.sessions {
		if s.MentorID == mentorID && s.Status.IsActive() && s.Window().Overlaps(w) {
			busy = true
			break
		}
	}
	r.mu.Unlock()
	if r.overlapDelay > 0 {
		select {
		case <-time.After(r.overlapDelay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return busy, nil
}

func (r *stubSessionRepo) Transition(_ context.Context, t ports.SessionTransition) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[t.SessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.Status != t.From {
		return nil, domain.ErrInvalidTransition
	}
	s.Status = t.To
	if t.MeetingLink != "" {
		s.MeetingLink = t.MeetingLink
	}
	s.UpdatedAt = t.At
	s.StatusHistory = append(s.StatusHistory, domain.StatusHistoryEntry{Status: t.To, At: t.At, ActorID: t.ActorID})
	return cloneSession(s), nil
}

func (r *stubSessionRepo) MarkRated(_ context.Context, in ports.SessionRating) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[in.SessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !s.Ratable() {
		return nil, domain.ErrNotRatable
	}
	s.Rating = in.Rating
	s.Review = in.Review
	s.IsRated = true
	at := in.At
	s.RatedAt = &at
	return cloneSession(s), nil
}

func (r *stubSessionRepo) RatingsForMentor(_ context.Context, mentorID string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ratingsErr != nil {
		return nil, r.ratingsErr
	}
	var out []int
	for _, s := range r.sessions {
		if s.MentorID == mentorID && s.IsRated {
			out = append(out, s.Rating)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) List(_ context.Context, f ports.SessionFilter) ([]*domain.Session, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Session
	for _, s := range r.sessions {
		if f.MentorID != "" && s.MentorID != f.MentorID {
			continue
		}
		if f.LearnerID != "" && s.LearnerID != f.LearnerID {
			continue
		}
		if f.ParticipantID != "" && !s.HasParticipant(f.ParticipantID) {
			continue
		}
		if f.Status != "" && string(s.Status) != f.Status {
			continue
		}
		matched = append(matched, cloneSession(s))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ScheduledAt.After(matched[j].ScheduledAt) })
	return paginate(matched, f.Page, f.Limit), int64(len(matched)), nil
}

func (r *stubSessionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sessions)), nil
}

func (r *stubSessionRepo) AverageRating(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ratings []int
	for _, s := range r.sessions {
		if s.IsRated {
			ratings = append(ratings, s.Rating)
		}
	}
	return domain.AggregateRatings(ratings).Average, nil
}

// ---------------------------------------------------------------------------
// Capability stubs
// ---------------------------------------------------------------------------

type failingLocker struct{ err error }

func (l failingLocker) Lock(context.Context, string) (func(), error) { return nil, l.err }

type stubScheduler struct {
	mu        sync.Mutex
	scheduled []string
}

func (s *stubScheduler) Schedule(mentorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, mentorID)
}

type stubPresence struct {
	online map[string]bool
	err    error
	beats  []string
}

func (p *stubPresence) Heartbeat(_ context.Context, mentorID string, _ time.Time) error {
	if p.err != nil {
		return p.err
	}
	p.beats = append(p.beats, mentorID)
	return nil
}

func (p *stubPresence) Online(_ context.Context, ids []string) (map[string]bool, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = p.online[id]
	}
	return out, nil
}

var errStore = errors.New("store unavailable")

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

func seedMentor(repo *stubUserRepo, id string, verified bool) *domain.User {
	u := &domain.User{
		ID:    id,
		Name:  "Mentor " + id,
		Email: id + "@example.com",
		Role:  domain.RoleMentor,
		MentorProfile: &domain.MentorProfile{
			Subjects: []string{"go"},
			Verified: verified,
		},
	}
	repo.users[id] = u
	return u
}

func seedLearner(repo *stubUserRepo, id string) *domain.User {
	u := &domain.User{ID: id, Name: "Learner " + id, Email: id + "@example.com", Role: domain.RoleLearner}
	repo.users[id] = u
	return u
}

func seedSession(repo *stubSessionRepo, mentorID, learnerID string, at time.Time, status domain.SessionStatus) *domain.Session {
	repo.nextID++
	s := &domain.Session{
		ID:              fmt.Sprintf("s%d", repo.nextID),
		MentorID:        mentorID,
		LearnerID:       learnerID,
		ScheduledAt:     at,
		DurationMinutes: domain.DefaultDurationMinutes,
		Status:          status,
		Channel:         domain.ChannelVideo,
	}
	repo.sessions[s.ID] = s
	return cloneSession(s)
}
