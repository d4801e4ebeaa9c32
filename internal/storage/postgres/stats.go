package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) GetAnalytics(ctx context.Context) (*domain.SOSAnalytics, error) {
	const op = "postgres.Stats.GetAnalytics"

	const query = `
		SELECT
			(SELECT COUNT(*) FROM sos_reports
			 WHERE status IN ('pending', 'acknowledged', 'in_progress'))                   AS total_active,
			(SELECT COUNT(*) FROM sos_reports
			 WHERE status = 'resolved' AND resolved_at >= date_trunc('day', NOW()))       AS resolved_today,
			(SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (acknowledged_at - reported_at)) / 60), 0)
			 FROM sos_reports WHERE acknowledged_at IS NOT NULL)                          AS avg_response_minutes,
			(SELECT COALESCE(
				(SELECT emergency_type FROM sos_reports
				 GROUP BY emergency_type ORDER BY COUNT(*) DESC, emergency_type LIMIT 1),
				'unknown'))                                                               AS most_common_type,
			(SELECT COUNT(*) FROM sos_reports
			 WHERE is_urgent AND status IN ('pending', 'acknowledged', 'in_progress'))    AS urgent_cases,
			(SELECT COUNT(*) FROM assistance_offers WHERE accepted_at IS NULL)            AS available_helpers
	`

	var a domain.SOSAnalytics
	err := p.pool.QueryRow(ctx, query).Scan(
		&a.TotalActive,
		&a.ResolvedToday,
		&a.AvgResponseTimeMinutes,
		&a.MostCommonType,
		&a.UrgentCases,
		&a.AvailableHelpers,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}
