package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Per-user task tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment, and configures
// the logger.
func loadConfig() (config.Config, *log.Logger, error) {
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := config.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger, nil
}
