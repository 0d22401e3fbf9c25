package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Get returns a user profile. Users may read their own profile; admins any profile.
// Mentor profiles are public through MentorService.Get.
func (s *UserService) Get(ctx context.Context, p ports.Principal, id string) (*domain.User, error) {
	if p.ID != id && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies a partial profile update. Only mentors may carry a
// mentor profile patch, and any such patch sends the profile back for approval.
func (s *UserService) UpdateProfile(ctx context.Context, p ports.Principal, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	if p.ID != id && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if upd.Mentor != nil && current.Role != domain.RoleMentor {
		return nil, fmt.Errorf("update profile: mentor_profile on a %s: %w", current.Role, domain.ErrInvalidInput)
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("update profile: empty name: %w", domain.ErrInvalidInput)
	}
	if upd.Mentor != nil && upd.Mentor.HourlyRate != nil && *upd.Mentor.HourlyRate < 0 {
		return nil, fmt.Errorf("update profile: negative hourly_rate: %w", domain.ErrInvalidInput)
	}

	updated, err := s.users.UpdateProfile(ctx, id, upd, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if upd.Mentor != nil {
		s.log.Info().Str("mentor_id", id).Msg("mentor profile edited, verification reset")
	}
	return updated, nil
}
