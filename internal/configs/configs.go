package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppHost                string        `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                string        `env:"APP_PORT" envDefault:"8080"`
	DatabaseDSN            string        `env:"DATABASE_DSN" envDefault:"tasks.db"`
	RedisEnabled           bool          `env:"REDIS_ENABLED" envDefault:"false"`
	RedisHost              string        `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort              string        `env:"REDIS_PORT" envDefault:"6379"`
	StatsCacheTTL          time.Duration `env:"STATS_CACHE_TTL" envDefault:"1m"`
	RateLimit              int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	JWTSecret              string        `env:"JWT_SECRET"`
	JWTTTL                 time.Duration `env:"JWT_TTL" envDefault:"720h"`
	JWTIssuer              string        `env:"JWT_ISSUER" envDefault:"task-tracker"`
	BcryptCost             int           `env:"BCRYPT_COST" envDefault:"10"`
	ShutdownTimeoutSeconds int           `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat              string        `env:"LOG_FORMAT" envDefault:"text"`
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppHost == "" || cfg.AppPort == "" {
		return errors.New("APP_HOST and APP_PORT must not be empty")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be greater than 0")
	}
	if cfg.StatsCacheTTL < 0 {
		return errors.New("STATS_CACHE_TTL must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}
