// Command server runs the mentorship HTTP API.
//
// @title                       Mentorship API
// @version                     1.0
// @description                 Mentor discovery, session booking and ratings.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "github.com/skillsphere/mentorship-api/docs"
	"github.com/skillsphere/mentorship-api/internal/api"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
	"github.com/skillsphere/mentorship-api/internal/core/service"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/db/mongo"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/db/redis"
	httpserver "github.com/skillsphere/mentorship-api/internal/infrastructure/http"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/http/handlers"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/lock"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/presence"
	"github.com/skillsphere/mentorship-api/internal/infrastructure/queue"
	"github.com/skillsphere/mentorship-api/internal/pkg/config"
	"github.com/skillsphere/mentorship-api/pkg/logger"
)

const serviceName = "mentorship-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.Disconnect(client, cfg.ShutdownTimeout); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	users := mongo.NewUserRepository(db, cfg.Mongo.Timeout)
	sessions := mongo.NewSessionRepository(db, cfg.Mongo.Timeout)
	if err := mongo.EnsureAll(ctx, users, sessions); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	checks := map[string]handlers.Check{"mongodb": handlers.MongoCheck(db)}

	// --- Redis (optional) ---
	var (
		locker  ports.BookingLocker
		tracker ports.PresenceTracker
		rdb     *goredis.Client
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		locker = redis.NewBookingLock(rdb, cfg.Booking.LockTTL, cfg.Booking.LockWait, func(err error) {
			log.Warn().Err(err).Msg("booking lock release failed")
		})
		tracker = redis.NewPresence(rdb, cfg.Redis.PresenceTTL)
		checks["redis"] = handlers.RedisCheck(rdb)
	} else {
		log.Warn().Msg("redis disabled: booking lock and presence are process-local")
		locker = lock.NewKeyed(cfg.Booking.LockWait)
		tracker = presence.NewMemory(cfg.Redis.PresenceTTL)
	}

	// --- Services ---
	ratings := service.NewRatingService(sessions, users, log)
	dispatcher := queue.NewDispatcher(ratings, queue.Options{
		Workers:     cfg.Rating.Workers,
		MaxAttempts: cfg.Rating.MaxAttempts,
		Backoff:     cfg.Rating.RetryBackoff,
	}, log)

	sessionSvc := service.NewSessionService(sessions, users, locker, ratings, dispatcher, log).
		WithLockBudget(cfg.Booking.LockBudget())

	router := api.NewRouter(api.Deps{
		Log:                log,
		JWTSecret:          cfg.JWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Auth:               service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL, log),
		Sessions:           sessionSvc,
		Mentors:            service.NewMentorService(users, tracker, log),
		Users:              service.NewUserService(users, log),
		Dashboard:          service.NewDashboardService(users, tracker, log),
		Admin:              service.NewAdminService(users, sessions, ratings, log),
		ReadinessChecks:    checks,
	})
	srv := httpserver.NewServer(router, ":"+cfg.Port, cfg.ShutdownTimeout, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dispatcher.Start(gctx)
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})

	log.Info().Str("env", cfg.Env).Bool("redis", cfg.Redis.Enabled).Msg("mentorship api started")
	return g.Wait()
}
