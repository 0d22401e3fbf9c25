package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

func seedRated(repo *stubSessionRepo, mentorID string, ratings ...int) {
	for i, r := range ratings {
		s := seedSession(repo, mentorID, "l1", fixedNow.Add(-time.Duration(i+1)*time.Hour), domain.StatusCompleted)
		repo.sessions[s.ID].Rating = r
		repo.sessions[s.ID].IsRated = true
	}
}

func TestRatingService_Recompute(t *testing.T) {
	users := newStubUserRepo()
	seedMentor(users, "m1", true)
	sessions := newStubSessionRepo()
	seedRated(sessions, "m1", 5, 3, 4)
	seedRated(sessions, "other", 1)
	seedSession(sessions, "m1", "l1", fixedNow, domain.StatusCompleted) // unrated

	svc := NewRatingService(sessions, users, discardLogger)
	got, err := svc.Recompute(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Recompute returned error: %v", err)
	}
	want := domain.RatingSummary{Average: 4, Count: 3}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	mentor, _ := users.FindByID(context.Background(), "m1")
	if mentor.RatingSummary() != want {
		t.Fatalf("stored %+v, want %+v", mentor.RatingSummary(), want)
	}
}

func TestRatingService_Recompute_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	seedMentor(users, "m1", true)
	sessions := newStubSessionRepo()
	seedRated(sessions, "m1", 5, 4, 4, 2, 1)
	svc := NewRatingService(sessions, users, discardLogger)
	ctx := context.Background()

	first, err := svc.Recompute(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Recompute(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("repeated recompute diverged: %+v vs %+v", first, second)
	}
}

// A stale derived value is overwritten by the next recompute.
func TestRatingService_Recompute_CorrectsDrift(t *testing.T) {
	users := newStubUserRepo()
	m := seedMentor(users, "m1", true)
	m.MentorProfile.Rating = 2.5
	m.MentorProfile.RatingCount = 99
	sessions := newStubSessionRepo()
	seedRated(sessions, "m1", 5, 5)

	got, err := NewRatingService(sessions, users, discardLogger).Recompute(context.Background(), "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got != (domain.RatingSummary{Average: 5, Count: 2}) {
		t.Fatalf("got %+v", got)
	}
}

func TestRatingService_Recompute_NoRatings(t *testing.T) {
	users := newStubUserRepo()
	seedMentor(users, "m1", true)

	got, err := NewRatingService(newStubSessionRepo(), users, discardLogger).Recompute(context.Background(), "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got != (domain.RatingSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestRatingService_Recompute_Errors(t *testing.T) {
	users := newStubUserRepo()
	seedMentor(users, "m1", true)
	sessions := newStubSessionRepo()
	sessions.ratingsErr = errStore

	if _, err := NewRatingService(sessions, users, discardLogger).Recompute(context.Background(), "m1"); !errors.Is(err, errStore) {
		t.Fatalf("expected load error, got %v", err)
	}

	sessions.ratingsErr = nil
	users.ratingErr = errStore
	if _, err := NewRatingService(sessions, users, discardLogger).Recompute(context.Background(), "m1"); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}
