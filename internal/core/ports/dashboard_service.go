package ports

import (
	"context"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// RecommendedMentor is a mentor suggestion with its match score.
type RecommendedMentor struct {
	Mentor *domain.User
	Score  float64
	Online bool
}

// QuickAction is a shortcut shown on the learner dashboard.
type QuickAction struct {
	Label string
	Path  string
}

// LearnerDashboard aggregates the learner landing page.
type LearnerDashboard struct {
	Recommended     []RecommendedMentor
	SuggestedTopics []string
	QuickActions    []QuickAction
}

type DashboardService interface {
	Learner(ctx context.Context, p Principal) (*LearnerDashboard, error)
}
