package ports

import (
	"context"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// Principal is the authenticated caller, as extracted from the bearer token.
type Principal struct {
	ID   string
	Role string
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool { return p.Role == domain.RoleAdmin }

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	Interests []string
	Goals     []string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
