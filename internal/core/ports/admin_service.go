package ports

import (
	"context"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// Analytics is the platform overview shown to admins.
type Analytics struct {
	TotalUsers    int64
	MentorsCount  int64
	LearnersCount int64
	SessionsCount int64
	AvgRating     float64
}

type AdminService interface {
	ListMentorApplications(ctx context.Context, page, limit int) (*ListMentorsResult, error)
	ApproveMentor(ctx context.Context, mentorID string) (*domain.User, error)
	Analytics(ctx context.Context) (*Analytics, error)
	RecomputeRating(ctx context.Context, mentorID string) (domain.RatingSummary, error)
}
