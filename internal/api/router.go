package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/skillsphere/mentorship-api/internal/api/handler"
	"github.com/skillsphere/mentorship-api/internal/api/middleware"
	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/http/handlers"
)

// Deps carries everything NewRouter wires into routes.
type Deps struct {
	Log                zerolog.Logger
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimitPerMinute int
	// MetricsRegisterer receives the HTTP request metrics; nil means the
	// default prometheus registerer.
	MetricsRegisterer prometheus.Registerer

	Auth      ports.AuthService
	Sessions  ports.SessionService
	Mentors   ports.MentorService
	Users     ports.UserService
	Dashboard ports.DashboardService
	Admin     ports.AdminService

	// ReadinessChecks are probed by /health/ready, keyed by dependency name.
	ReadinessChecks map[string]handlers.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "mentorship",
		Subsystem:  "http",
		Registerer: d.MetricsRegisterer,
		Skipper:    skipInfra,
	}))
	if d.RateLimitPerMinute > 0 {
		e.Use(echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Skipper: skipInfra,
			Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(d.RateLimitPerMinute) / 60),
				Burst:     d.RateLimitPerMinute,
				ExpiresIn: 3 * time.Minute,
			}),
		}))
	}

	// --- Infra routes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(d.ReadinessChecks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := middleware.Auth(d.JWTSecret)
	learner := middleware.RBAC(domain.RoleLearner)
	mentor := middleware.RBAC(domain.RoleMentor)
	admin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	authH := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	// --- Mentors (public discovery) ---
	mentorH := handler.NewMentorHandler(d.Mentors)
	mentors := e.Group("/mentors")
	mentors.GET("", mentorH.Search)
	mentors.GET("/best-rated", mentorH.BestRated)
	mentors.POST("/heartbeat", mentorH.Heartbeat, auth, mentor)
	mentors.GET("/:id", mentorH.Get)

	// --- Users ---
	userH := handler.NewUserHandler(d.Users)
	users := e.Group("/users", auth)
	users.GET("/:id", userH.Get)
	users.PUT("/:id", userH.Update)

	// --- Learner dashboard ---
	dashH := handler.NewDashboardHandler(d.Dashboard)
	e.GET("/learners/dashboard", dashH.Learner, auth, learner)

	// --- Sessions ---
	sessionH := handler.NewSessionHandler(d.Sessions)
	sessions := e.Group("/sessions", auth)
	sessions.POST("", sessionH.Book, learner)
	sessions.GET("", sessionH.List)
	sessions.GET("/timeline", sessionH.Timeline, middleware.RBAC(domain.RoleLearner, domain.RoleMentor))
	sessions.GET("/:id", sessionH.Get)
	sessions.PATCH("/:id/accept", sessionH.Accept, middleware.RBAC(domain.RoleMentor, domain.RoleAdmin))
	sessions.PATCH("/:id/decline", sessionH.Decline, middleware.RBAC(domain.RoleMentor, domain.RoleAdmin))
	sessions.PATCH("/:id/cancel", sessionH.Cancel, middleware.RBAC(domain.RoleLearner, domain.RoleMentor))
	sessions.PATCH("/:id/mark-completed", sessionH.MarkCompleted, learner)
	sessions.PATCH("/:id/rate", sessionH.Rate, learner)
	e.POST("/feedback/:sessionId", sessionH.Feedback, auth, learner)

	// --- Admin ---
	adminH := handler.NewAdminHandler(d.Admin)
	adm := e.Group("/admin", auth, admin)
	adm.GET("/mentor-applications", adminH.MentorApplications)
	adm.PATCH("/mentor-applications/:id/approve", adminH.ApproveMentor)
	adm.GET("/analytics", adminH.Analytics)
	adm.POST("/mentors/:id/recompute-rating", adminH.RecomputeRating)

	return e
}

// skipInfra excludes probes, metrics and docs from request metrics and rate limiting.
func skipInfra(c echo.Context) bool {
	p := c.Request().URL.Path
	return strings.HasPrefix(p, "/health") || p == "/metrics" || strings.HasPrefix(p, "/swagger")
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
