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

type assistanceService struct {
	offers AssistanceRepository
	sos    SOSRepository
	eng    *engine.Engine
	logger *slog.Logger
}

func NewAssistanceService(
	offers AssistanceRepository,
	sos SOSRepository,
	eng *engine.Engine,
	logger *slog.Logger,
) AssistanceService {
	return &assistanceService{
		offers: offers,
		sos:    sos,
		eng:    eng,
		logger: logger,
	}
}

func (s *assistanceService) Offer(ctx context.Context, sosID uuid.UUID, req domain.OfferAssistanceRequest) (*domain.RankedOffer, error) {
	const op = "service.Assistance.Offer"

	if !req.AssistanceType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	report, err := s.sos.Get(ctx, sosID)
	if err != nil {
		return nil, err
	}
	if !report.CrowdAssistEnabled {
		return nil, fmt.Errorf("%s: crowd assistance disabled for report: %w", op, e.ErrConflict)
	}

	offer := &domain.AssistanceOffer{
		ID:             uuid.New(),
		SOSReportID:    report.ID,
		HelperName:     req.HelperName,
		HelperPhone:    req.HelperPhone,
		HelperLocation: domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		AssistanceType: req.AssistanceType,
		Description:    req.Description,
		OfferedAt:      time.Now().UTC(),
	}

	ranked, err := s.eng.RankOffers(engine.Incident{Location: report.Location},
		[]domain.AssistanceOffer{*offer}, 0, false)
	if err != nil {
		return nil, err
	}

	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.logger.Info("assistance offered",
		slog.String("offer_id", offer.ID.String()),
		slog.String("sos_id", report.ID.String()),
		slog.Float64("distance_km", ranked[0].DistanceKm),
	)

	result := ranked[0]
	result.Offer = *offer
	return &result, nil
}

func (s *assistanceService) ListForReport(ctx context.Context, sosID uuid.UUID, limit int, includeAccepted bool) ([]domain.RankedOffer, error) {
	report, err := s.sos.Get(ctx, sosID)
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.ListForReport(ctx, sosID, !includeAccepted)
	if err != nil {
		return nil, err
	}

	return s.eng.RankOffers(engine.Incident{Location: report.Location}, offers, limit, includeAccepted)
}

// Accept runs the engine's pure decision over the stored offer, then
// commits the transition through the conditional update so that of two
// racing accepts only one wins.
func (s *assistanceService) Accept(ctx context.Context, offerID uuid.UUID) (*domain.AcceptedOffer, error) {
	offer, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return nil, err
	}

	decision, err := s.eng.AcceptOffer(offerID, []domain.AssistanceOffer{*offer})
	if err != nil {
		return nil, err
	}

	if err := s.offers.MarkAccepted(ctx, offerID, decision.AcceptedAt); err != nil {
		return nil, err
	}

	s.logger.Info("assistance offer accepted",
		slog.String("offer_id", offerID.String()),
		slog.String("sos_id", decision.SOSReportID.String()),
	)
	return &decision, nil
}
