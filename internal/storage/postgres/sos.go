package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type SOSRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSOSRepo(pool *pgxpool.Pool, logger *slog.Logger) *SOSRepo {
	return &SOSRepo{pool: pool, logger: logger}
}

const sosColumns = `
		id,
		reporter_name,
		reporter_phone,
		ST_Y(geo_point::geometry) AS lat,
		ST_X(geo_point::geometry) AS lng,
		emergency_type,
		description,
		severity,
		num_people_affected,
		is_urgent,
		status,
		nearest_resource_id,
		reported_at,
		acknowledged_at,
		resolved_at,
		crowd_assistance_enabled
`

func (p *SOSRepo) Create(ctx context.Context, report *domain.SOSReport) error {
	const op = "postgres.SOS.Create"

	const query = `
		INSERT INTO sos_reports (
			id, reporter_name, reporter_phone, geo_point, emergency_type,
			description, severity, num_people_affected, is_urgent, status,
			reported_at, crowd_assistance_enabled
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.SOSPending
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.ReporterName,
		report.ReporterPhone,
		report.Location.Lng,
		report.Location.Lat,
		report.EmergencyType,
		report.Description,
		report.Severity,
		report.NumPeopleAffected,
		report.IsUrgent,
		report.Status,
		report.ReportedAt,
		report.CrowdAssistEnabled,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SOSRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error) {
	const op = "postgres.SOS.Get"

	const query = `SELECT ` + sosColumns + ` FROM sos_reports WHERE id = $1`

	var r domain.SOSReport
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.ReporterName,
		&r.ReporterPhone,
		&r.Location.Lat,
		&r.Location.Lng,
		&r.EmergencyType,
		&r.Description,
		&r.Severity,
		&r.NumPeopleAffected,
		&r.IsUrgent,
		&r.Status,
		&r.NearestResourceID,
		&r.ReportedAt,
		&r.AcknowledgedAt,
		&r.ResolvedAt,
		&r.CrowdAssistEnabled,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *SOSRepo) ListActive(ctx context.Context, limit int) ([]domain.SOSReport, error) {
	const op = "postgres.SOS.ListActive"

	query := `
		SELECT ` + sosColumns + `
		FROM sos_reports
		WHERE status IN ('pending', 'acknowledged', 'in_progress')
		ORDER BY reported_at DESC
	`
	// limit <= 0 means the whole active set. The cluster and nearby
	// views feed every active report to the engine; truncating here
	// would silently drop cluster members during a large event.
	var args []any
	if limit > 0 {
		if limit > 500 {
			limit = 500
		}
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []domain.SOSReport
	for rows.Next() {
		var r domain.SOSReport
		if err := rows.Scan(
			&r.ID,
			&r.ReporterName,
			&r.ReporterPhone,
			&r.Location.Lat,
			&r.Location.Lng,
			&r.EmergencyType,
			&r.Description,
			&r.Severity,
			&r.NumPeopleAffected,
			&r.IsUrgent,
			&r.Status,
			&r.NearestResourceID,
			&r.ReportedAt,
			&r.AcknowledgedAt,
			&r.ResolvedAt,
			&r.CrowdAssistEnabled,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

func (p *SOSRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SOSStatus, nearestResourceID *uuid.UUID) error {
	const op = "postgres.SOS.UpdateStatus"

	const query = `
		UPDATE sos_reports
		SET status = $2,
			nearest_resource_id = COALESCE($3, nearest_resource_id),
			acknowledged_at = CASE WHEN $2 = 'acknowledged' THEN NOW() ELSE acknowledged_at END,
			resolved_at     = CASE WHEN $2 = 'resolved' THEN NOW() ELSE resolved_at END
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, nearestResourceID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
