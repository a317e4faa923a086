package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"shipping/internal/core/domain/model/shipment"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisURL              string
	Timezone              string
	LogLevel              string
	AppEnv                string
	StatusOverrideEnabled bool
	DigestCron            string
	APITokens             string
}

var loadDotEnv sync.Once

// LoadConfig reads the process environment, seeded once from .env when the
// file exists. Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	var dotEnvErr error
	loadDotEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			dotEnvErr = fmt.Errorf("error loading .env file: %w", err)
		}
	})
	if dotEnvErr != nil {
		return Config{}, dotEnvErr
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds the config from a lookup function and applies defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	override := false
	if raw := getenv("STATUS_OVERRIDE_ENABLED"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("STATUS_OVERRIDE_ENABLED: %w", err)
		}
		override = v
	}

	return Config{
		HTTPPort:              withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:                getenv("DB_HOST"),
		DBPort:                withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             withDefault(getenv("DB_SSLMODE"), "disable"),
		RedisURL:              withDefault(getenv("REDIS_URL"), "redis://localhost:6379/0"),
		Timezone:              withDefault(getenv("TIMEZONE"), "Europe/Madrid"),
		LogLevel:              withDefault(getenv("LOG_LEVEL"), "info"),
		AppEnv:                withDefault(getenv("APP_ENV"), "development"),
		StatusOverrideEnabled: override,
		DigestCron:            getenv("DIGEST_CRON"),
		APITokens:             getenv("API_TOKENS"),
	}, nil
}

// DSN is the libpq style connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c Config) TransitionPolicy() shipment.TransitionPolicy {
	if c.StatusOverrideEnabled {
		return shipment.TransitionOverride
	}
	return shipment.TransitionForwardOnly
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// NewLogger returns a JSON logger in production and a text logger elsewhere.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
