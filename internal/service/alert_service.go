package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/engine"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type alertService struct {
	repo   AlertRepository
	sos    SOSRepository
	queue  AlertQueue
	eng    *engine.Engine
	logger *slog.Logger
}

func NewAlertService(
	repo AlertRepository,
	sos SOSRepository,
	queue AlertQueue,
	eng *engine.Engine,
	logger *slog.Logger,
) AlertService {
	return &alertService{
		repo:   repo,
		sos:    sos,
		queue:  queue,
		eng:    eng,
		logger: logger,
	}
}

func (s *alertService) Broadcast(ctx context.Context, req domain.BroadcastAlertRequest) (*domain.AlertBroadcast, error) {
	const op = "service.Alert.Broadcast"

	if !req.AlertType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	report, err := s.sos.Get(ctx, req.SOSReportID)
	if err != nil {
		return nil, err
	}

	scope := s.eng.ResolveScope(report.Severity, req.ScopeOverride)

	alert := &domain.AlertBroadcast{
		ID:                  uuid.New(),
		SOSReportID:         report.ID,
		AlertType:           req.AlertType,
		Message:             req.Message,
		Scope:               scope.Scope,
		Location:            report.Location,
		EstimatedRecipients: scope.EstimatedRecipients,
		BroadcastAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	// Queue failures are logged, not returned: the broadcast record is
	// the source of truth and delivery can be replayed from it.
	payload := domain.AlertPayload{
		BroadcastID:         alert.ID,
		SOSReportID:         alert.SOSReportID,
		AlertType:           alert.AlertType,
		Message:             alert.Message,
		Scope:               alert.Scope,
		Lat:                 alert.Location.Lat,
		Lng:                 alert.Location.Lng,
		EstimatedRecipients: alert.EstimatedRecipients,
		QueuedAt:            time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("alert enqueue failed",
			slog.String("op", op),
			slog.String("broadcast_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	s.logger.Info("alert broadcast",
		slog.String("broadcast_id", alert.ID.String()),
		slog.String("scope", string(alert.Scope)),
		slog.Int64("recipients", alert.EstimatedRecipients),
	)
	return alert, nil
}
