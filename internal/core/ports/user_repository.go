package ports

import (
	"context"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// MentorFilter carries the query parameters for listing mentors.
type MentorFilter struct {
	Query     string   // optional: full-text search on name, bio, subjects and tags
	Subjects  []string // optional: any-of match
	Tags      []string // optional: any-of match
	MinRating float64  // optional: mentor_profile.rating >= MinRating
	Verified  *bool    // nil = both
	SortBy    string   // "" = relevance/newest, "rating" = best rated first
	Page      int      // 1-based
	Limit     int
}

// ProfileUpdate is a partial update of a user's profile. Nil fields are left
// unchanged. Mentor carries only the client-editable part of the mentor profile.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	Location  *string
	AvatarURL *string
	Interests []string
	Goals     []string
	Languages []string
	Mentor    *MentorProfileUpdate
}

// MentorProfileUpdate holds the mentor profile fields a mentor may edit.
type MentorProfileUpdate struct {
	Bio            *string
	Subjects       []string
	Tags           []string
	Portfolio      []domain.PortfolioItem
	HourlyRate     *float64
	Languages      []string
	Timezone       *string
	Certifications []string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateProfile applies upd and returns the updated user. Editing the mentor
	// profile clears its verified flag.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate, at time.Time) (*domain.User, error)
	// SetMentorRating writes rating and rating_count together in one update.
	SetMentorRating(ctx context.Context, mentorID string, summary domain.RatingSummary) error
	// ApproveMentor sets verified=true and approved_at. Returns ErrMentorNotFound
	// when id does not reference a mentor.
	ApproveMentor(ctx context.Context, mentorID string, at time.Time) (*domain.User, error)
	ListMentors(ctx context.Context, filter MentorFilter) ([]*domain.User, int64, error)
	// CountByRole counts users with role; an empty role counts everyone.
	CountByRole(ctx context.Context, role string) (int64, error)
}
