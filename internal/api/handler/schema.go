package handler

import (
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name      string   `json:"name"      validate:"required,max=120"`
	Email     string   `json:"email"     validate:"required,email"`
	Password  string   `json:"password"  validate:"required,min=8"`
	Role      string   `json:"role"      validate:"omitempty,oneof=learner mentor"`
	Interests []string `json:"interests"`
	Goals     []string `json:"goals"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Sessions ---

type bookSessionRequest struct {
	MentorID        string            `json:"mentor_id"        validate:"required"`
	LearnerID       string            `json:"learner_id"`
	ScheduledAt     string            `json:"scheduled_at"     validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Channel         string            `json:"channel"          validate:"omitempty,oneof=video audio chat link"`
	Notes           string            `json:"notes"            validate:"max=2000"`
	Price           *float64          `json:"price"            validate:"omitempty,gte=0"`
	Resources       []resourceRequest `json:"resources"        validate:"max=10,dive"`
}

type resourceRequest struct {
	Title string `json:"title" validate:"max=200"`
	URL   string `json:"url"   validate:"required,url"`
}

type acceptSessionRequest struct {
	MeetingLink string `json:"meeting_link" validate:"omitempty,url"`
}

// rateSessionRequest leaves the 1..5 range to the service, which checks
// ownership first.
type rateSessionRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review" validate:"max=2000"`
}

type sessionListResponse struct {
	Items      []*domain.Session `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type timelineResponse struct {
	Past     []*domain.Session `json:"past"`
	Upcoming []*domain.Session `json:"upcoming"`
}

// --- Mentors / users ---

type mentorListResponse struct {
	Items      []*domain.User `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type mentorProfileRequest struct {
	Bio            *string                `json:"bio"            validate:"omitempty,max=2000"`
	Subjects       []string               `json:"subjects"`
	Tags           []string               `json:"tags"`
	Portfolio      []domain.PortfolioItem `json:"portfolio"`
	HourlyRate     *float64               `json:"hourly_rate"    validate:"omitempty,gte=0"`
	Languages      []string               `json:"languages"`
	Timezone       *string                `json:"timezone"`
	Certifications []string               `json:"certifications"`
}

type updateProfileRequest struct {
	Name          *string               `json:"name"       validate:"omitempty,min=1,max=120"`
	Bio           *string               `json:"bio"        validate:"omitempty,max=2000"`
	Location      *string               `json:"location"   validate:"omitempty,max=120"`
	AvatarURL     *string               `json:"avatar_url" validate:"omitempty,url"`
	Interests     []string              `json:"interests"`
	Goals         []string              `json:"goals"`
	Languages     []string              `json:"languages"`
	MentorProfile *mentorProfileRequest `json:"mentor_profile"`
}

type heartbeatResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// --- Dashboard ---

type recommendedMentorResponse struct {
	Mentor *domain.User `json:"mentor"`
	Score  float64      `json:"score"`
	Online bool         `json:"online"`
}

type quickActionResponse struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type learnerDashboardResponse struct {
	Recommended     []recommendedMentorResponse `json:"recommended"`
	SuggestedTopics []string                    `json:"suggested_topics"`
	QuickActions    []quickActionResponse       `json:"quick_actions"`
}

// --- Admin ---

type analyticsResponse struct {
	TotalUsers    int64   `json:"total_users"`
	MentorsCount  int64   `json:"mentors_count"`
	LearnersCount int64   `json:"learners_count"`
	SessionsCount int64   `json:"sessions_count"`
	AvgRating     float64 `json:"avg_rating"`
}

type ratingResponse struct {
	MentorID    string  `json:"mentor_id"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
}
