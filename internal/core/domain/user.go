package domain

import "time"

const (
	RoleLearner = "learner"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleLearner || role == RoleMentor || role == RoleAdmin
}

// PortfolioItem links a piece of mentor work.
type PortfolioItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MentorProfile holds the mentor-only part of a user. Rating and RatingCount
// are derived from rated sessions and are never written by clients.
type MentorProfile struct {
	Bio            string          `json:"bio,omitempty"`
	Subjects       []string        `json:"subjects"`
	Tags           []string        `json:"tags"`
	Portfolio      []PortfolioItem `json:"portfolio"`
	HourlyRate     float64         `json:"hourly_rate,omitempty"`
	Languages      []string        `json:"languages"`
	Timezone       string          `json:"timezone,omitempty"`
	Certifications []string        `json:"certifications"`
	Verified       bool            `json:"verified"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	Rating         float64         `json:"rating"`
	RatingCount    int             `json:"rating_count"`
}

// User models an authenticated actor in the system.
type User struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"-"`
	Role          string         `json:"role"`
	AvatarURL     string         `json:"avatar_url,omitempty"`
	Interests     []string       `json:"interests"`
	Goals         []string       `json:"goals"`
	Bio           string         `json:"bio,omitempty"`
	Location      string         `json:"location,omitempty"`
	Languages     []string       `json:"languages"`
	MentorProfile *MentorProfile `json:"mentor_profile,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// IsMentor reports whether the user is a mentor with a profile.
func (u *User) IsMentor() bool {
	return u.Role == RoleMentor && u.MentorProfile != nil
}

// RatingSummary returns the mentor's current derived rating.
func (u *User) RatingSummary() RatingSummary {
	if u.MentorProfile == nil {
		return RatingSummary{}
	}
	return RatingSummary{Average: u.MentorProfile.Rating, Count: u.MentorProfile.RatingCount}
}
