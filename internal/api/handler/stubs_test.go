package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubSessionService struct {
	bookFn   func(ctx context.Context, p ports.Principal, in ports.BookSessionInput) (*domain.Session, error)
	acceptFn func(ctx context.Context, p ports.Principal, id, link string) (*domain.Session, error)
	// stateFn serves Decline, Cancel and MarkCompleted; op names the call.
	stateFn    func(op string, p ports.Principal, id string) (*domain.Session, error)
	rateFn     func(ctx context.Context, p ports.Principal, in ports.RateSessionInput) (*domain.Session, error)
	getFn      func(ctx context.Context, p ports.Principal, id string) (*domain.Session, error)
	listFn     func(ctx context.Context, p ports.Principal, in ports.ListSessionsInput) (*ports.ListSessionsResult, error)
	timelineFn func(ctx context.Context, p ports.Principal) (*ports.Timeline, error)
}

func (s *stubSessionService) Book(ctx context.Context, p ports.Principal, in ports.BookSessionInput) (*domain.Session, error) {
	return s.bookFn(ctx, p, in)
}

func (s *stubSessionService) Accept(ctx context.Context, p ports.Principal, id, link string) (*domain.Session, error) {
	return s.acceptFn(ctx, p, id, link)
}

func (s *stubSessionService) Decline(_ context.Context, p ports.Principal, id string) (*domain.Session, error) {
	return s.stateFn("decline", p, id)
}

func (s *stubSessionService) Cancel(_ context.Context, p ports.Principal, id string) (*domain.Session, error) {
	return s.stateFn("cancel", p, id)
}

func (s *stubSessionService) MarkCompleted(_ context.Context, p ports.Principal, id string) (*domain.Session, error) {
	return s.stateFn("complete", p, id)
}

func (s *stubSessionService) Rate(ctx context.Context, p ports.Principal, in ports.RateSessionInput) (*domain.Session, error) {
	return s.rateFn(ctx, p, in)
}

func (s *stubSessionService) Get(ctx context.Context, p ports.Principal, id string) (*domain.Session, error) {
	return s.getFn(ctx, p, id)
}

func (s *stubSessionService) List(ctx context.Context, p ports.Principal, in ports.ListSessionsInput) (*ports.ListSessionsResult, error) {
	return s.listFn(ctx, p, in)
}

func (s *stubSessionService) Timeline(ctx context.Context, p ports.Principal) (*ports.Timeline, error) {
	return s.timelineFn(ctx, p)
}

type stubMentorService struct {
	searchFn    func(ctx context.Context, in ports.SearchMentorsInput) (*ports.ListMentorsResult, error)
	bestRatedFn func(ctx context.Context, limit int) ([]*domain.User, error)
	getFn       func(ctx context.Context, id string) (*domain.User, error)
	heartbeatFn func(ctx context.Context, p ports.Principal) error
}

func (s *stubMentorService) Search(ctx context.Context, in ports.SearchMentorsInput) (*ports.ListMentorsResult, error) {
	return s.searchFn(ctx, in)
}

func (s *stubMentorService) BestRated(ctx context.Context, limit int) ([]*domain.User, error) {
	return s.bestRatedFn(ctx, limit)
}

func (s *stubMentorService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubMentorService) Heartbeat(ctx context.Context, p ports.Principal) error {
	return s.heartbeatFn(ctx, p)
}

type stubUserService struct {
	getFn    func(ctx context.Context, p ports.Principal, id string) (*domain.User, error)
	updateFn func(ctx context.Context, p ports.Principal, id string, upd ports.ProfileUpdate) (*domain.User, error)
}

func (s *stubUserService) Get(ctx context.Context, p ports.Principal, id string) (*domain.User, error) {
	return s.getFn(ctx, p, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, p ports.Principal, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, p, id, upd)
}

type stubAdminService struct {
	applicationsFn func(ctx context.Context, page, limit int) (*ports.ListMentorsResult, error)
	approveFn      func(ctx context.Context, id string) (*domain.User, error)
	analyticsFn    func(ctx context.Context) (*ports.Analytics, error)
	recomputeFn    func(ctx context.Context, id string) (domain.RatingSummary, error)
}

func (s *stubAdminService) ListMentorApplications(ctx context.Context, page, limit int) (*ports.ListMentorsResult, error) {
	return s.applicationsFn(ctx, page, limit)
}

func (s *stubAdminService) ApproveMentor(ctx context.Context, id string) (*domain.User, error) {
	return s.approveFn(ctx, id)
}

func (s *stubAdminService) Analytics(ctx context.Context) (*ports.Analytics, error) {
	return s.analyticsFn(ctx)
}

func (s *stubAdminService) RecomputeRating(ctx context.Context, id string) (domain.RatingSummary, error) {
	return s.recomputeFn(ctx, id)
}

type stubDashboardService struct {
	learnerFn func(ctx context.Context, p ports.Principal) (*ports.LearnerDashboard, error)
}

func (s *stubDashboardService) Learner(ctx context.Context, p ports.Principal) (*ports.LearnerDashboard, error) {
	return s.learnerFn(ctx, p)
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

var (
	learnerPrincipal = ports.Principal{ID: "learner-1", Role: domain.RoleLearner}
	mentorPrincipal  = ports.Principal{ID: "mentor-1", Role: domain.RoleMentor}
	adminPrincipal   = ports.Principal{ID: "admin-1", Role: domain.RoleAdmin}
)

// newContext builds an echo context with a validator, an optional JSON body
// and, when p is non-zero, the claims the Auth middleware would have set.
func newContext(t *testing.T, method, target string, body io.Reader, p ports.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p.ID != "" {
		c.Set("user_id", p.ID)
		c.Set("role", p.Role)
	}
	return c, rec
}

// httpCode returns the status code of an *echo.HTTPError, or 0.
func httpCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}
