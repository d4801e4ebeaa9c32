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

type AssistanceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssistanceRepo(pool *pgxpool.Pool, logger *slog.Logger) *AssistanceRepo {
	return &AssistanceRepo{pool: pool, logger: logger}
}

const offerColumns = `
		id,
		sos_report_id,
		helper_name,
		helper_phone,
		ST_Y(geo_point::geometry) AS lat,
		ST_X(geo_point::geometry) AS lng,
		assistance_type,
		description,
		is_verified,
		rating,
		offered_at,
		accepted_at
`

func (p *AssistanceRepo) Create(ctx context.Context, offer *domain.AssistanceOffer) error {
	const op = "postgres.Assistance.Create"

	const query = `
		INSERT INTO assistance_offers (
			id, sos_report_id, helper_name, helper_phone, geo_point,
			assistance_type, description, is_verified, rating, offered_at
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11)
	`

	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	if offer.OfferedAt.IsZero() {
		offer.OfferedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		offer.ID,
		offer.SOSReportID,
		offer.HelperName,
		offer.HelperPhone,
		offer.HelperLocation.Lng,
		offer.HelperLocation.Lat,
		offer.AssistanceType,
		offer.Description,
		offer.IsVerified,
		offer.Rating,
		offer.OfferedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AssistanceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.AssistanceOffer, error) {
	const op = "postgres.Assistance.Get"

	const query = `SELECT ` + offerColumns + ` FROM assistance_offers WHERE id = $1`

	var o domain.AssistanceOffer
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.SOSReportID,
		&o.HelperName,
		&o.HelperPhone,
		&o.HelperLocation.Lat,
		&o.HelperLocation.Lng,
		&o.AssistanceType,
		&o.Description,
		&o.IsVerified,
		&o.Rating,
		&o.OfferedAt,
		&o.AcceptedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &o, nil
}

func (p *AssistanceRepo) ListForReport(ctx context.Context, sosID uuid.UUID, openOnly bool) ([]domain.AssistanceOffer, error) {
	const op = "postgres.Assistance.ListForReport"

	query := `SELECT ` + offerColumns + ` FROM assistance_offers WHERE sos_report_id = $1`
	if openOnly {
		query += ` AND accepted_at IS NULL`
	}
	query += ` ORDER BY offered_at ASC`

	rows, err := p.pool.Query(ctx, query, sosID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var offers []domain.AssistanceOffer
	for rows.Next() {
		var o domain.AssistanceOffer
		if err := rows.Scan(
			&o.ID,
			&o.SOSReportID,
			&o.HelperName,
			&o.HelperPhone,
			&o.HelperLocation.Lat,
			&o.HelperLocation.Lng,
			&o.AssistanceType,
			&o.Description,
			&o.IsVerified,
			&o.Rating,
			&o.OfferedAt,
			&o.AcceptedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return offers, nil
}

// MarkAccepted is the single-writer commit: the UPDATE is conditional
// on accepted_at still being NULL, so of two racing accepts only one
// sees a row affected. The loser gets ErrAlreadyAccepted, a missing
// offer gets ErrNotFound.
func (p *AssistanceRepo) MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "postgres.Assistance.MarkAccepted"

	const query = `
		UPDATE assistance_offers
		SET accepted_at = $2
		WHERE id = $1 AND accepted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		checkErr := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM assistance_offers WHERE id = $1)`, id).Scan(&exists)
		if checkErr != nil && !errors.Is(checkErr, pgx.ErrNoRows) {
			return e.WrapError(ctx, op, checkErr)
		}
		if !exists {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, e.ErrAlreadyAccepted)
	}

	return nil
}
