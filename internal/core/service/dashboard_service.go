package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

const (
	recommendedMentors = 5
	maxSuggestedTopics = 5
	// candidatePool bounds how many verified mentors are scored per request.
	candidatePool = 100
)

var trendingTopics = []string{
	"JavaScript Best Practices",
	"AI for Beginners",
	"UI/UX Fundamentals",
	"Data Structures",
	"Cloud Basics",
}

var learnerQuickActions = []ports.QuickAction{
	{Label: "Book Session", Path: "/sessions/book"},
	{Label: "Browse Mentors", Path: "/mentors"},
	{Label: "View History", Path: "/sessions/history"},
}

type DashboardService struct {
	users    ports.UserRepository
	presence ports.PresenceTracker
	log      zerolog.Logger
}

func NewDashboardService(users ports.UserRepository, presence ports.PresenceTracker, log zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, presence: presence, log: log}
}

// Learner builds the learner landing page: recommended mentors, suggested
// topics and quick actions.
func (s *DashboardService) Learner(ctx context.Context, p ports.Principal) (*ports.LearnerDashboard, error) {
	learner, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("learner dashboard: %w", err)
	}

	verified := true
	mentors, _, err := s.users.ListMentors(ctx, ports.MentorFilter{
		Verified: &verified,
		SortBy:   "rating",
		Page:     1,
		Limit:    candidatePool,
	})
	if err != nil {
		return nil, fmt.Errorf("learner dashboard: mentors: %w", err)
	}

	recommended := rankMentors(learner, mentors, recommendedMentors)

	ids := make([]string, len(recommended))
	for i, r := range recommended {
		ids[i] = r.Mentor.ID
	}
	online, err := s.presence.Online(ctx, ids)
	if err != nil {
		// presence is best effort; everyone shows as offline
		s.log.Warn().Err(err).Msg("presence lookup failed")
	}
	for i := range recommended {
		recommended[i].Online = online[recommended[i].Mentor.ID]
	}

	return &ports.LearnerDashboard{
		Recommended:     recommended,
		SuggestedTopics: suggestTopics(learner.Interests),
		QuickActions:    learnerQuickActions,
	}, nil
}

// matchScore is 2 points per shared interest/subject, 1 per shared goal/tag,
// plus the mentor's rating.
func matchScore(learner, mentor *domain.User) float64 {
	if mentor.MentorProfile == nil {
		return 0
	}
	score := 2 * float64(countShared(learner.Interests, mentor.MentorProfile.Subjects))
	score += float64(countShared(learner.Goals, mentor.MentorProfile.Tags))
	return score + mentor.MentorProfile.Rating
}

func rankMentors(learner *domain.User, mentors []*domain.User, n int) []ports.RecommendedMentor {
	ranked := make([]ports.RecommendedMentor, 0, len(mentors))
	for _, m := range mentors {
		if m.ID == learner.ID {
			continue
		}
		ranked = append(ranked, ports.RecommendedMentor{Mentor: m, Score: matchScore(learner, m)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func countShared(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[strings.ToLower(v)] = struct{}{}
	}
	n := 0
	for _, v := range b {
		if _, ok := set[strings.ToLower(v)]; ok {
			n++
			delete(set, strings.ToLower(v))
		}
	}
	return n
}

func suggestTopics(interests []string) []string {
	topics := []string{}
	for _, topic := range trendingTopics {
		lower := strings.ToLower(topic)
		for _, in := range interests {
			if in != "" && strings.Contains(lower, strings.ToLower(in)) {
				topics = append(topics, topic)
				break
			}
		}
		if len(topics) == maxSuggestedTopics {
			break
		}
	}
	return topics
}
