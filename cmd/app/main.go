package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"freight/cmd"
	"freight/internal/adapters/in/http/middleware"
	"freight/internal/adapters/out/inproc"
	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/adapters/out/postgres/positionrepo"
	"freight/internal/adapters/out/redisbus"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleThreshold = 90 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustConnectDB(configs, logger)
	migrateDB(gormDB, logger)

	eventBus := createEventBus(ctx, configs, logger)

	operators := parseOperatorIDs(configs.OperatorIDs, logger)
	root := cmd.NewCompositionRoot(configs, gormDB, eventBus, operators, logger)

	reactor := root.CreateGeofenceReactor()
	if err := reactor.Start(ctx); err != nil {
		logger.Error("failed to start geofence reactor", "error", err)
		os.Exit(1)
	}

	if err := root.NotificationDispatcher().Start(ctx); err != nil {
		logger.Error("failed to start notification dispatcher", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager(staleThreshold(configs, logger))
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	for _, key := range []string{"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
		if os.Getenv(key) == "" {
			log.Fatalf("%s is required", key)
		}
	}

	return cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		EventBusMode:   os.Getenv("EVENT_BUS_MODE"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		OperatorIDs:    os.Getenv("OPERATOR_IDS"),
		StaleThreshold: os.Getenv("STALE_THRESHOLD"),
	}
}

func mustConnectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	return gormDB
}

func migrateDB(gormDB *gorm.DB, logger *slog.Logger) {
	err := gormDB.AutoMigrate(&jobrepo.JobDTO{}, &bidrepo.BidDTO{}, &positionrepo.PositionDTO{})
	if err != nil {
		logger.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}
}

// createEventBus selects the event transport. The in-process bus serves a
// single instance; Redis Pub/Sub fans events out across instances.
func createEventBus(ctx context.Context, configs cmd.Config, logger *slog.Logger) ports.EventBus {
	if configs.EventBusMode != "redis" {
		return inproc.NewEventBus(logger)
	}

	client, err := redisbus.NewClient(ctx, configs.RedisAddr, configs.RedisPassword)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	return redisbus.NewEventBus(client, logger)
}

func parseOperatorIDs(raw string, logger *slog.Logger) []kernel.UUID {
	if raw == "" {
		return nil
	}

	var operators []kernel.UUID
	for _, s := range strings.Split(raw, ",") {
		id, err := kernel.UUIDFromString(strings.TrimSpace(s))
		if err != nil {
			logger.Warn("skipping invalid operator id", "value", s)
			continue
		}
		operators = append(operators, id)
	}

	return operators
}

func staleThreshold(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.StaleThreshold == "" {
		return defaultStaleThreshold
	}

	threshold, err := time.ParseDuration(configs.StaleThreshold)
	if err != nil || threshold <= 0 {
		logger.Warn("invalid stale threshold, using default",
			"value", configs.StaleThreshold, "default", defaultStaleThreshold.String())
		return defaultStaleThreshold
	}

	return threshold
}

func startWebServer(ctx context.Context, root cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Prometheus())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws/:recipientId", root.WebSocketHub().Handler)

	servers.RegisterHandlers(e, root.CreateHTTPServer())

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
