package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func (p *AlertRepo) Create(ctx context.Context, alert *domain.AlertBroadcast) error {
	const op = "postgres.Alert.Create"

	const query = `
		INSERT INTO alert_broadcasts (
			id, sos_report_id, alert_type, message, scope,
			geo_point, estimated_recipients, broadcast_at
		)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9)
	`

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.BroadcastAt.IsZero() {
		alert.BroadcastAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.SOSReportID,
		alert.AlertType,
		alert.Message,
		alert.Scope,
		alert.Location.Lng,
		alert.Location.Lat,
		alert.EstimatedRecipients,
		alert.BroadcastAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

type DispatchRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDispatchRepo(pool *pgxpool.Pool, logger *slog.Logger) *DispatchRepo {
	return &DispatchRepo{pool: pool, logger: logger}
}

const dispatchColumns = `
		id,
		resource_id,
		sos_report_id,
		ST_Y(geo_point::geometry) AS lat,
		ST_X(geo_point::geometry) AS lng,
		emergency_type,
		severity,
		distance_km,
		estimated_arrival,
		actual_arrival,
		dispatched_at,
		status
`

func (p *DispatchRepo) CreateRecord(ctx context.Context, rec *domain.DispatchRecord) error {
	const op = "postgres.Dispatch.CreateRecord"

	const query = `
		INSERT INTO dispatch_records (
			id, resource_id, sos_report_id, geo_point, emergency_type,
			severity, distance_km, estimated_arrival, dispatched_at, status
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.DispatchedAt.IsZero() {
		rec.DispatchedAt = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = domain.DispatchDispatched
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.ResourceID,
		rec.SOSReportID,
		rec.DisasterLocation.Lng,
		rec.DisasterLocation.Lat,
		rec.EmergencyType,
		rec.Severity,
		rec.DistanceKm,
		rec.EstimatedArrival,
		rec.DispatchedAt,
		rec.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DispatchRepo) Get(ctx context.Context, id uuid.UUID) (*domain.DispatchRecord, error) {
	const op = "postgres.Dispatch.Get"

	const query = `SELECT ` + dispatchColumns + ` FROM dispatch_records WHERE id = $1`

	var rec domain.DispatchRecord
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.ResourceID,
		&rec.SOSReportID,
		&rec.DisasterLocation.Lat,
		&rec.DisasterLocation.Lng,
		&rec.EmergencyType,
		&rec.Severity,
		&rec.DistanceKm,
		&rec.EstimatedArrival,
		&rec.ActualArrival,
		&rec.DispatchedAt,
		&rec.Status,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &rec, nil
}

func (p *DispatchRepo) ListActive(ctx context.Context) ([]domain.DispatchRecord, error) {
	const op = "postgres.Dispatch.ListActive"

	const query = `
		SELECT ` + dispatchColumns + `
		FROM dispatch_records
		WHERE status IN ('dispatched', 'en_route', 'arrived')
		ORDER BY dispatched_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var records []domain.DispatchRecord
	for rows.Next() {
		var rec domain.DispatchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ResourceID,
			&rec.SOSReportID,
			&rec.DisasterLocation.Lat,
			&rec.DisasterLocation.Lng,
			&rec.EmergencyType,
			&rec.Severity,
			&rec.DistanceKm,
			&rec.EstimatedArrival,
			&rec.ActualArrival,
			&rec.DispatchedAt,
			&rec.Status,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return records, nil
}

// UpdateStatus refuses to move a record out of a terminal status: the
// UPDATE is conditional, so of two racing completions only one sees a
// row affected. Completing a record stamps actual_arrival once.
func (p *DispatchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DispatchStatus) error {
	const op = "postgres.Dispatch.UpdateStatus"

	const query = `
		UPDATE dispatch_records
		SET status = $2,
			actual_arrival = CASE
				WHEN $2 = 'completed' AND actual_arrival IS NULL THEN NOW()
				ELSE actual_arrival
			END
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')
	`

	cmd, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		checkErr := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM dispatch_records WHERE id = $1)`, id).Scan(&exists)
		if checkErr != nil && !errors.Is(checkErr, pgx.ErrNoRows) {
			return e.WrapError(ctx, op, checkErr)
		}
		if !exists {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	return nil
}
