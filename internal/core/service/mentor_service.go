package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/api/metrics"
	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

const defaultBestRatedLimit = 6

type MentorService struct {
	users    ports.UserRepository
	presence ports.PresenceTracker
	log      zerolog.Logger
}

func NewMentorService(users ports.UserRepository, presence ports.PresenceTracker, log zerolog.Logger) *MentorService {
	return &MentorService{users: users, presence: presence, log: log}
}

// Search lists verified mentors matching the query.
func (s *MentorService) Search(ctx context.Context, in ports.SearchMentorsInput) (*ports.ListMentorsResult, error) {
	if in.MinRating < 0 || in.MinRating > domain.MaxRating {
		return nil, fmt.Errorf("search mentors: min_rating out of range: %w", domain.ErrInvalidInput)
	}
	page, limit := normalizePage(in.Page, in.Limit)
	verified := true

	items, total, err := s.users.ListMentors(ctx, ports.MentorFilter{
		Query:     strings.TrimSpace(in.Query),
		Subjects:  in.Subjects,
		Tags:      in.Tags,
		MinRating: in.MinRating,
		Verified:  &verified,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search mentors: %w", err)
	}

	return &ports.ListMentorsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// BestRated returns verified mentors ordered by rating, then rating count.
func (s *MentorService) BestRated(ctx context.Context, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = defaultBestRatedLimit
	}
	_, limit = normalizePage(1, limit)
	verified := true

	items, _, err := s.users.ListMentors(ctx, ports.MentorFilter{
		Verified: &verified,
		SortBy:   "rating",
		Page:     1,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("best rated mentors: %w", err)
	}
	return items, nil
}

// Get returns a mentor by id. Users that are not mentors are reported as not found.
func (s *MentorService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	if !u.IsMentor() {
		return nil, domain.ErrMentorNotFound
	}
	return u, nil
}

// Heartbeat marks the calling mentor as online.
func (s *MentorService) Heartbeat(ctx context.Context, p ports.Principal) error {
	if p.Role != domain.RoleMentor {
		return domain.ErrForbidden
	}
	if err := s.presence.Heartbeat(ctx, p.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	metrics.MentorHeartbeatsTotal.Inc()
	return nil
}
