package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
)

type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) error
	List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.GeoPoint) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ResourceStatus) error
	// MarkDispatched commits the advisory busy transition and fails with
	// ErrConflict when a concurrent dispatch won the resource first.
	MarkDispatched(ctx context.Context, id uuid.UUID) error
}

type SOSRepository interface {
	Create(ctx context.Context, report *domain.SOSReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error)
	ListActive(ctx context.Context, limit int) ([]domain.SOSReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SOSStatus, nearestResourceID *uuid.UUID) error
}

type AssistanceRepository interface {
	Create(ctx context.Context, offer *domain.AssistanceOffer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.AssistanceOffer, error)
	ListForReport(ctx context.Context, sosID uuid.UUID, openOnly bool) ([]domain.AssistanceOffer, error)
	// MarkAccepted enforces the single-writer accept: the UPDATE is
	// conditional on accepted_at IS NULL and a lost race surfaces as
	// ErrAlreadyAccepted.
	MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) error
}

type DispatchRepository interface {
	CreateRecord(ctx context.Context, rec *domain.DispatchRecord) error
	Get(ctx context.Context, id uuid.UUID) (*domain.DispatchRecord, error)
	ListActive(ctx context.Context) ([]domain.DispatchRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DispatchStatus) error
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.AlertBroadcast) error
}

type StatsRepository interface {
	GetAnalytics(ctx context.Context) (*domain.SOSAnalytics, error)
}

func (p *Postgres) Resources() ResourceRepository     { return p.Resource }
func (p *Postgres) SOSReports() SOSRepository         { return p.SOS }
func (p *Postgres) Assistances() AssistanceRepository { return p.Assistance }
func (p *Postgres) Dispatches() DispatchRepository    { return p.Dispatch }
func (p *Postgres) Alerts() AlertRepository           { return p.Alert }
func (p *Postgres) Stats() StatsRepository            { return p.Stat }
