package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Dipanshu93198/DRS/internal/api"
	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/system"
	"github.com/Dipanshu93198/DRS/internal/config"
	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/engine"
	"github.com/Dipanshu93198/DRS/internal/redis"
	"github.com/Dipanshu93198/DRS/internal/service"
	"github.com/Dipanshu93198/DRS/internal/storage/postgres"
	"github.com/Dipanshu93198/DRS/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	AlertQ     *redis.AlertQueue
	Sender     *workers.AlertSender
	Refresher  *workers.SnapshotRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")
	sosCache := redis.NewSOSCache(redisClient)

	eng := engine.New(EngineConfig(cfg.Engine))

	alertSvc := service.NewAlertService(storage.Alerts(), storage.SOSReports(), alertQueue, eng, logger)
	sosSvc := service.NewSOSService(
		storage.SOSReports(), storage.Stats(), sosCache, alertSvc, eng, logger,
		cfg.Engine.DefaultSearchRadiusKm, cfg.Engine.DefaultClusterRadiusKm, cfg.Alerts.SnapshotTTL,
	)
	dispatchSvc := service.NewDispatchService(storage.Resources(), storage.Dispatches(), eng, logger, cfg.Engine.DefaultSearchRadiusKm)
	assistSvc := service.NewAssistanceService(storage.Assistances(), storage.SOSReports(), eng, logger)
	resourceSvc := service.NewResourceService(storage.Resources(), logger)

	srv := service.NewService(sosSvc, dispatchSvc, assistSvc, resourceSvc, alertSvc)

	probes := map[string]system.Pinger{
		"postgres": pgPinger{storage},
		"redis":    redisPinger{redisClient},
	}

	httpServer := api.NewServer(cfg, logger, srv, probes)
	logger.Info("initialized server")

	sender := workers.NewAlertSender(logger, cfg.Alerts, alertQueue)
	refresher := workers.NewSnapshotRefresher(logger, storage.SOSReports(), sosCache, cfg.Alerts.SnapshotTTL/2, cfg.Alerts.SnapshotTTL)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		AlertQ:     alertQueue,
		Sender:     sender,
		Refresher:  refresher,
	}, nil
}

// EngineConfig maps the env-driven figures onto the engine's policy.
func EngineConfig(c config.EngineConfig) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.SpeedsByType = map[domain.ResourceType]float64{
		domain.ResourceAmbulance:  c.AmbulanceSpeedKmh,
		domain.ResourceDrone:      c.DroneSpeedKmh,
		domain.ResourceRescueTeam: c.RescueTeamSpeedKmh,
		domain.ResourceFireTruck:  c.FireTruckSpeedKmh,
		domain.ResourceSupplyUnit: c.SupplyUnitSpeedKmh,
	}
	cfg.DefaultSpeedKmh = c.DefaultSpeedKmh
	cfg.VolunteerSpeedKmh = c.VolunteerSpeedKmh
	cfg.HighSeverityThreshold = c.HighSeverityThreshold
	cfg.DefaultClusterRadiusKm = c.DefaultClusterRadiusKm
	return cfg
}

type pgPinger struct{ pg *postgres.Postgres }

func (p pgPinger) Ping(ctx context.Context) error { return p.pg.Pool.Ping(ctx) }

type redisPinger struct{ r *redis.Redis }

func (p redisPinger) Ping(ctx context.Context) error { return p.r.Client.Ping(ctx).Err() }

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
