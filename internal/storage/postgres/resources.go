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

type ResourceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResourceRepo(pool *pgxpool.Pool, logger *slog.Logger) *ResourceRepo {
	return &ResourceRepo{pool: pool, logger: logger}
}

func (p *ResourceRepo) Create(ctx context.Context, r *domain.Resource) error {
	const op = "postgres.Resource.Create"

	const query = `
		INSERT INTO resources (id, name, type, status, geo_point, speed_kmh, updated_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8)
	`

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = domain.ResourceAvailable
	}

	_, err := p.pool.Exec(ctx, query,
		r.ID,
		r.Name,
		r.Type,
		r.Status,
		r.Location.Lng,
		r.Location.Lat,
		r.SpeedKmh,
		r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const resourceColumns = `
		id,
		name,
		type,
		status,
		ST_Y(geo_point::geometry) AS lat,
		ST_X(geo_point::geometry) AS lng,
		speed_kmh,
		updated_at
`

func (p *ResourceRepo) List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error) {
	const op = "postgres.Resource.List"

	query := `SELECT ` + resourceColumns + ` FROM resources`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var r domain.Resource
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Type,
			&r.Status,
			&r.Location.Lat,
			&r.Location.Lng,
			&r.SpeedKmh,
			&r.UpdatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return resources, nil
}

func (p *ResourceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	const op = "postgres.Resource.Get"

	const query = `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	var r domain.Resource
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.Name,
		&r.Type,
		&r.Status,
		&r.Location.Lat,
		&r.Location.Lng,
		&r.SpeedKmh,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *ResourceRepo) UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.GeoPoint) error {
	const op = "postgres.Resource.UpdateLocation"

	const query = `
		UPDATE resources
		SET geo_point = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, loc.Lng, loc.Lat)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ResourceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ResourceStatus) error {
	const op = "postgres.Resource.UpdateStatus"

	const query = `
		UPDATE resources
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// MarkDispatched is the commit half of select-then-commit: it only
// succeeds when the resource is still available, so two dispatches that
// both picked the same resource cannot both win.
func (p *ResourceRepo) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Resource.MarkDispatched"

	const query = `
		UPDATE resources
		SET status = 'busy', updated_at = NOW()
		WHERE id = $1 AND status = 'available'
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	return nil
}
