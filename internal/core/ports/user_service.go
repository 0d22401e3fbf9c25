package ports

import (
	"context"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

type UserService interface {
	Get(ctx context.Context, p Principal, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, p Principal, id string, upd ProfileUpdate) (*domain.User, error)
}
