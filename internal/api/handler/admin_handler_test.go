package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

func TestAdminHandler_Analytics(t *testing.T) {
	stub := &stubAdminService{
		analyticsFn: func(ctx context.Context) (*ports.Analytics, error) {
			return &ports.Analytics{TotalUsers: 10, MentorsCount: 3, LearnersCount: 6, SessionsCount: 12, AvgRating: 4.25}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/admin/analytics", nil, adminPrincipal)
	if err := h.Analytics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp analyticsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := analyticsResponse{TotalUsers: 10, MentorsCount: 3, LearnersCount: 6, SessionsCount: 12, AvgRating: 4.25}
	if resp != want {
		t.Fatalf("got %+v, want %+v", resp, want)
	}
}

func TestAdminHandler_MentorApplications_Paging(t *testing.T) {
	stub := &stubAdminService{
		applicationsFn: func(ctx context.Context, page, limit int) (*ports.ListMentorsResult, error) {
			if page != 3 || limit != 7 {
				t.Fatalf("unexpected paging: %d/%d", page, limit)
			}
			return &ports.ListMentorsResult{Page: page, Limit: limit}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/admin/mentor-applications?page=3&limit=7", nil, adminPrincipal)
	if err := h.MentorApplications(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_ApproveMentor_NotFound(t *testing.T) {
	stub := &stubAdminService{
		approveFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrMentorNotFound
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newContext(t, http.MethodPatch, "/admin/mentor-applications/x/approve", nil, adminPrincipal)
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := h.ApproveMentor(c); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("expected ErrMentorNotFound, got %v", err)
	}
}

func TestAdminHandler_RecomputeRating(t *testing.T) {
	stub := &stubAdminService{
		recomputeFn: func(ctx context.Context, id string) (domain.RatingSummary, error) {
			return domain.RatingSummary{Average: 4, Count: 3}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/admin/mentors/m1/recompute-rating", nil, adminPrincipal)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := h.RecomputeRating(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp ratingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp != (ratingResponse{MentorID: "m1", Rating: 4, RatingCount: 3}) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDashboardHandler_Learner(t *testing.T) {
	stub := &stubDashboardService{
		learnerFn: func(ctx context.Context, p ports.Principal) (*ports.LearnerDashboard, error) {
			return &ports.LearnerDashboard{
				Recommended:  []ports.RecommendedMentor{{Mentor: &domain.User{ID: "m1"}, Score: 6.5, Online: true}},
				QuickActions: []ports.QuickAction{{Label: "Book Session", Path: "/sessions/new"}},
			}, nil
		},
	}
	h := NewDashboardHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/learners/dashboard", nil, learnerPrincipal)
	if err := h.Learner(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp learnerDashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Recommended) != 1 || !resp.Recommended[0].Online || resp.Recommended[0].Score != 6.5 {
		t.Fatalf("unexpected recommendations: %+v", resp.Recommended)
	}
	if resp.SuggestedTopics == nil {
		t.Fatal("suggested_topics must serialize as an array")
	}
	if len(resp.QuickActions) != 1 || resp.QuickActions[0].Path != "/sessions/new" {
		t.Fatalf("unexpected quick actions: %+v", resp.QuickActions)
	}
}
