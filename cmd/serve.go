package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	"task-tracker.com/task-tracker/internal/cache"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

const rateLimitKeyPrefix = "task-tracker:ratelimit:"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the schema and starts the task tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if err := config.Migrate(database); err != nil {
			return err
		}

		var redisClient rueidis.Client
		if cfg.RedisEnabled {
			redisClient, err = config.NewRedisClient(cfg.RedisAddr())
			if err != nil {
				return err
			}
			defer redisClient.Close()
		}

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)

		taskService := services.NewTaskService(taskRepo, cache.NewStatsCache(redisClient, cfg.StatsCacheTTL))
		authService := services.NewAuthService(
			userRepo,
			auth.NewTokenManager(auth.JWTConfig{
				SecretKey: cfg.JWTSecret,
				TTL:       cfg.JWTTTL,
				Issuer:    cfg.JWTIssuer,
			}),
			auth.NewPasswordHasher(cfg.BcryptCost),
		)

		var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		if redisClient != nil {
			limiter = middleware.NewRedisLimiter(redisClient, rateLimitKeyPrefix, cfg.RateLimit, time.Minute)
		}

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.Server{
			Tasks:         httpapi.NewHandler(taskService),
			Auth:          httpapi.NewAuthHandler(authService),
			Authenticator: authService,
			Limiter:       limiter,
			Logger:        logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Infof("HTTP server listening on %s", cfg.AppURL())
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("HTTP server shutdown timed out")
		}

		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
