package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/redis/schedulestore"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger := configs.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}

// run owns every connection it opens and releases them before returning.
func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	redisClient, err := schedulestore.NewClient(configs.RedisURL)
	if err != nil {
		return fmt.Errorf("error configuring redis: %w", err)
	}
	defer redisClient.Close()
	store, err := schedulestore.NewRedisScheduleStore(redisClient, schedulestore.DefaultKey)
	if err != nil {
		return fmt.Errorf("error configuring schedule store: %w", err)
	}
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("error connecting to redis: %w", err)
	}

	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("error getting database handle: %w", err)
	}
	defer sqlDB.Close()
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, store, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return fmt.Errorf("error building application: %w", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("error building jobs: %w", err)
	}
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, store, configs.HTTPPort, logger)
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	store *schedulestore.RedisScheduleStore,
	port string,
	logger *slog.Logger,
) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	app.RegisterHTTP(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error serving http: %w", err)
	}
	return nil
}
