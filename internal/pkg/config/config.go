package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const envDevelopment = "development"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,   default=168h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,      default=15s"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE, default=120"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS,  default=*"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Booking BookingConfig
	Rating  RatingConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=mentorship"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Enabled     bool          `env:"REDIS_ENABLED,  default=true"`
	Addr        string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,       default=0"`
	PresenceTTL time.Duration `env:"PRESENCE_TTL,   default=2m"`
}

type BookingConfig struct {
	LockTTL  time.Duration `env:"BOOKING_LOCK_TTL,  default=10s"`
	LockWait time.Duration `env:"BOOKING_LOCK_WAIT, default=5s"`
}

// minLockTTL keeps the lock budget long enough for one overlap query and one insert.
const minLockTTL = time.Second

// LockBudget is how long a booking may work while holding the mentor lock:
// four fifths of the lease, so the lease outlives the work it guards.
func (b BookingConfig) LockBudget() time.Duration {
	return b.LockTTL - b.LockTTL/5
}

type RatingConfig struct {
	Workers      int           `env:"RATING_WORKERS,       default=4"`
	MaxAttempts  int           `env:"RATING_MAX_ATTEMPTS,  default=5"`
	RetryBackoff time.Duration `env:"RATING_RETRY_BACKOFF, default=500ms"`
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool { return c.Env == envDevelopment }

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			errs = append(errs, errors.New("JWT_SECRET is required outside development"))
		}
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	if c.Booking.LockTTL < minLockTTL {
		errs = append(errs, fmt.Errorf("BOOKING_LOCK_TTL must be at least %s", minLockTTL))
	}
	if c.Booking.LockWait <= 0 {
		errs = append(errs, errors.New("BOOKING_LOCK_WAIT must be positive"))
	}
	if c.Rating.Workers < 1 {
		errs = append(errs, errors.New("RATING_WORKERS must be at least 1"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load(context.Background())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}
