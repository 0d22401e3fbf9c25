package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

type AdminService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	ratings  ports.RatingAggregator
	log      zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	ratings ports.RatingAggregator,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, sessions: sessions, ratings: ratings, log: log}
}

// ListMentorApplications returns mentors awaiting verification.
func (s *AdminService) ListMentorApplications(ctx context.Context, page, limit int) (*ports.ListMentorsResult, error) {
	page, limit = normalizePage(page, limit)
	verified := false

	items, total, err := s.users.ListMentors(ctx, ports.MentorFilter{Verified: &verified, Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("mentor applications: %w", err)
	}
	return &ports.ListMentorsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ApproveMentor marks a mentor profile as verified.
func (s *AdminService) ApproveMentor(ctx context.Context, mentorID string) (*domain.User, error) {
	u, err := s.users.ApproveMentor(ctx, mentorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("approve mentor: %w", err)
	}
	s.log.Info().Str("mentor_id", mentorID).Msg("mentor approved")
	return u, nil
}

// Analytics gathers platform counters concurrently.
func (s *AdminService) Analytics(ctx context.Context) (*ports.Analytics, error) {
	var a ports.Analytics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		a.TotalUsers, err = s.users.CountByRole(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		a.MentorsCount, err = s.users.CountByRole(gctx, domain.RoleMentor)
		return err
	})
	g.Go(func() (err error) {
		a.LearnersCount, err = s.users.CountByRole(gctx, domain.RoleLearner)
		return err
	})
	g.Go(func() (err error) {
		a.SessionsCount, err = s.sessions.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		a.AvgRating, err = s.sessions.AverageRating(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return &a, nil
}

// RecomputeRating forces a recomputation of a mentor's derived rating.
func (s *AdminService) RecomputeRating(ctx context.Context, mentorID string) (domain.RatingSummary, error) {
	u, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.RatingSummary{}, domain.ErrMentorNotFound
		}
		return domain.RatingSummary{}, fmt.Errorf("recompute rating: %w", err)
	}
	if u.Role != domain.RoleMentor {
		return domain.RatingSummary{}, domain.ErrMentorNotFound
	}
	return s.ratings.Recompute(ctx, mentorID)
}
