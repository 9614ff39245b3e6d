package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const defaultHTTPPort = "8080"

type Config struct {
	HTTPPort               string
	LogLevel               slog.Level
	PreparationFirstUpdate preparation.FirstUpdatePolicy
	// BacklogReportSchedule is a cron expression with seconds; empty disables the report.
	BacklogReportSchedule string
	SeedCatalog           bool
	// RabbitMQURL enables publishing preparation events to RabbitMQ when set.
	RabbitMQURL      string
	RabbitMQExchange string
}

// LoadConfig reads the configuration from the environment. Values from envFile fill in
// variables the environment does not set; a missing file is not an error.
func LoadConfig(envFile string) (Config, error) {
	fileValues, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		fileValues = map[string]string{}
	}

	return ConfigFromLookup(func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	})
}

// ConfigFromLookup builds the configuration from lookup, applying defaults for unset or
// blank variables.
func ConfigFromLookup(lookup func(key string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	config := Config{
		HTTPPort:              get("HTTP_PORT", defaultHTTPPort),
		BacklogReportSchedule: jobs.DefaultBacklogSchedule,
		RabbitMQURL:           get("RABBITMQ_URL", ""),
		RabbitMQExchange:      get("RABBITMQ_EXCHANGE", rabbitmq.DefaultExchange),
	}
	// An explicitly empty schedule turns the backlog report off.
	if schedule, ok := lookup("BACKLOG_REPORT_SCHEDULE"); ok {
		config.BacklogReportSchedule = strings.TrimSpace(schedule)
	}

	var errList []error

	if err := config.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	policy, err := preparation.ParseFirstUpdatePolicy(get("PREPARATION_FIRST_UPDATE", ""))
	if err != nil {
		errList = append(errList, fmt.Errorf("PREPARATION_FIRST_UPDATE: %w", err))
	}
	config.PreparationFirstUpdate = policy

	seed, err := strconv.ParseBool(get("SEED_CATALOG", "true"))
	if err != nil {
		errList = append(errList, fmt.Errorf("SEED_CATALOG: %w", err))
	}
	config.SeedCatalog = seed

	if config.BacklogReportSchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err = parser.Parse(config.BacklogReportSchedule); err != nil {
			errList = append(errList, fmt.Errorf("BACKLOG_REPORT_SCHEDULE: %w", err))
		}
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}
