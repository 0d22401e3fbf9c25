package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

func newAuthSvc() (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewAuthService(repo, "secret", time.Hour, discardLogger), repo
}

func registerInput(name, email, role string) ports.RegisterInput {
	return ports.RegisterInput{Name: name, Email: email, Password: "pass123", Role: role}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthSvc()

	res, err := svc.Register(context.Background(), registerInput("Alice", "Alice@Example.com ", domain.RoleLearner))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	user := res.User
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.MentorProfile != nil {
		t.Fatalf("learner must not get a mentor profile")
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuthService_Register_MentorGetsUnverifiedProfile(t *testing.T) {
	svc, _ := newAuthSvc()

	res, err := svc.Register(context.Background(), registerInput("Bob", "bob@example.com", domain.RoleMentor))
	if err != nil {
		t.Fatal(err)
	}
	if res.User.MentorProfile == nil || res.User.MentorProfile.Verified {
		t.Fatalf("expected an unverified mentor profile, got %+v", res.User.MentorProfile)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthSvc()
	ctx := context.Background()

	tests := []struct {
		name string
		in   ports.RegisterInput
	}{
		{"missing name", registerInput("", "x@example.com", domain.RoleLearner)},
		{"missing email", registerInput("X", "", domain.RoleLearner)},
		{"missing password", ports.RegisterInput{Name: "X", Email: "x@example.com"}},
		{"admin role", registerInput("X", "x@example.com", domain.RoleAdmin)},
		{"unknown role", registerInput("X", "x@example.com", "wizard")},
	}
	for _, tt := range tests {
		if _, err := svc.Register(ctx, tt.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.Register(ctx, registerInput("Bob", "bob@example.com", domain.RoleLearner))
	if _, err := svc.Register(ctx, registerInput("Bob2", "BOB@example.com", domain.RoleLearner)); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newAuthSvc()
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerInput("Carol", "carol@example.com", domain.RoleMentor))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(ctx, "carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleMentor {
		t.Fatalf("expected role %s, got %v", domain.RoleMentor, claims["role"])
	}
	if claims["sub"] != reg.User.ID {
		t.Fatalf("expected sub %s, got %v", reg.User.ID, claims["sub"])
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthSvc()
	ctx := context.Background()
	_, _ = svc.Register(ctx, registerInput("Dave", "dave@example.com", domain.RoleLearner))

	cases := map[string][2]string{
		"wrong password": {"dave@example.com", "badpass"},
		"unknown email":  {"ghost@example.com", "pass123"},
		"empty":          {"", ""},
	}
	for name, c := range cases {
		if _, err := svc.Login(ctx, c[0], c[1]); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestNewAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0, discardLogger)
	if svc.tokenTTL != 7*24*time.Hour {
		t.Fatalf("expected 7 day default, got %v", svc.tokenTTL)
	}
}
