package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dipanshu93198/DRS/internal/config"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type Postgres struct {
	Pool       *pgxpool.Pool
	Resource   ResourceRepository
	SOS        SOSRepository
	Assistance AssistanceRepository
	Dispatch   DispatchRepository
	Alert      AlertRepository
	Stat       StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping postgres", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("connected to postgres", slog.String("db", cfg.Postgres.Database))

	return &Postgres{
		Pool:       pool,
		Resource:   NewResourceRepo(pool, logger),
		SOS:        NewSOSRepo(pool, logger),
		Assistance: NewAssistanceRepo(pool, logger),
		Dispatch:   NewDispatchRepo(pool, logger),
		Alert:      NewAlertRepo(pool, logger),
		Stat:       NewStatsRepo(pool, logger),
	}, nil
}
