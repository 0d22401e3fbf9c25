package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/api/metrics"
	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// RatingService recomputes a mentor's rating from the full set of rated sessions.
// Recompute reads a fresh snapshot every time, so concurrent or repeated calls
// converge on the same value.
type RatingService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewRatingService(sessions ports.SessionRepository, users ports.UserRepository, log zerolog.Logger) *RatingService {
	return &RatingService{sessions: sessions, users: users, log: log}
}

// Recompute aggregates all ratings for mentorID and writes rating and
// rating_count in a single update.
func (s *RatingService) Recompute(ctx context.Context, mentorID string) (domain.RatingSummary, error) {
	start := time.Now()

	summary, err := s.recompute(ctx, mentorID)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.RatingRecomputeDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		return domain.RatingSummary{}, err
	}
	s.log.Debug().
		Str("mentor_id", mentorID).
		Float64("rating", summary.Average).
		Int("rating_count", summary.Count).
		Msg("mentor rating recomputed")
	return summary, nil
}

func (s *RatingService) recompute(ctx context.Context, mentorID string) (domain.RatingSummary, error) {
	ratings, err := s.sessions.RatingsForMentor(ctx, mentorID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("recompute rating: load ratings: %w", err)
	}
	summary := domain.AggregateRatings(ratings)
	if err := s.users.SetMentorRating(ctx, mentorID, summary); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("recompute rating: store: %w", err)
	}
	return summary, nil
}
