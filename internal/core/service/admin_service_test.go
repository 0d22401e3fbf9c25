package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

func newAdminFixture() (*AdminService, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewAdminService(users, sessions, NewRatingService(sessions, users, discardLogger), discardLogger)
	return svc, users, sessions
}

func TestAdminService_ApplicationsAndApprove(t *testing.T) {
	svc, users, _ := newAdminFixture()
	seedMentor(users, "m1", false)
	seedMentor(users, "m2", true)
	seedLearner(users, "l1")
	ctx := context.Background()

	apps, err := svc.ListMentorApplications(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if apps.Total != 1 || apps.Items[0].ID != "m1" {
		t.Fatalf("expected only m1 pending, got %d", apps.Total)
	}

	approved, err := svc.ApproveMentor(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if !approved.MentorProfile.Verified || approved.MentorProfile.ApprovedAt == nil {
		t.Fatalf("expected verified with approved_at, got %+v", approved.MentorProfile)
	}

	apps, _ = svc.ListMentorApplications(ctx, 1, 10)
	if apps.Total != 0 {
		t.Fatalf("expected no pending applications, got %d", apps.Total)
	}

	if _, err := svc.ApproveMentor(ctx, "l1"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("approving a learner: expected ErrMentorNotFound, got %v", err)
	}
}

func TestAdminService_Analytics(t *testing.T) {
	svc, users, sessions := newAdminFixture()
	seedMentor(users, "m1", true)
	seedLearner(users, "l1")
	seedLearner(users, "l2")
	seedRated(sessions, "m1", 5, 4)
	seedSession(sessions, "m1", "l2", fixedNow, domain.StatusRequested)

	a, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.TotalUsers != 3 || a.MentorsCount != 1 || a.LearnersCount != 2 {
		t.Fatalf("unexpected user counts: %+v", a)
	}
	if a.SessionsCount != 3 {
		t.Fatalf("expected 3 sessions, got %d", a.SessionsCount)
	}
	if a.AvgRating != 4.5 {
		t.Fatalf("expected avg 4.5, got %v", a.AvgRating)
	}
}

func TestAdminService_RecomputeRating(t *testing.T) {
	svc, users, sessions := newAdminFixture()
	seedMentor(users, "m1", true)
	seedLearner(users, "l1")
	seedRated(sessions, "m1", 5, 3, 4)
	ctx := context.Background()

	got, err := svc.RecomputeRating(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got != (domain.RatingSummary{Average: 4, Count: 3}) {
		t.Fatalf("got %+v", got)
	}
	if _, err := svc.RecomputeRating(ctx, "l1"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("expected ErrMentorNotFound, got %v", err)
	}
}
