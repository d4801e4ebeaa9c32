package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/engine"
	"github.com/Dipanshu93198/DRS/internal/geo"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type dispatchService struct {
	resources      ResourceRepository
	dispatches     DispatchRepository
	eng            *engine.Engine
	logger         *slog.Logger
	searchRadiusKm float64
}

func NewDispatchService(
	resources ResourceRepository,
	dispatches DispatchRepository,
	eng *engine.Engine,
	logger *slog.Logger,
	searchRadiusKm float64,
) DispatchService {
	if searchRadiusKm <= 0 {
		searchRadiusKm = 10.0
	}
	return &dispatchService{
		resources:      resources,
		dispatches:     dispatches,
		eng:            eng,
		logger:         logger,
		searchRadiusKm: searchRadiusKm,
	}
}

// AutoDispatch runs the full select-then-commit sequence: the engine
// recommends a resource off a snapshot of available candidates, then
// the busy transition is committed with a conditional update. When a
// concurrent dispatch wins the same resource the commit fails with
// ErrConflict and the caller retries; the engine itself never reserves
// anything.
func (s *dispatchService) AutoDispatch(ctx context.Context, req domain.AutoDispatchRequest) (*domain.DispatchDecision, error) {
	const op = "service.Dispatch.AutoDispatch"

	incident := engine.Incident{
		Location:      domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		EmergencyType: req.EmergencyType,
		Severity:      req.Severity,
	}

	available := domain.ResourceAvailable
	candidates, err := s.resources.List(ctx, &available)
	if err != nil {
		return nil, err
	}

	decision, err := s.eng.SelectResource(incident, candidates, req.TypePriority)
	if err != nil {
		return nil, err
	}

	if err := s.resources.MarkDispatched(ctx, decision.ResourceID); err != nil {
		if errors.Is(err, e.ErrConflict) {
			s.logger.Warn("dispatch race lost, resource taken",
				slog.String("op", op),
				slog.String("resource_id", decision.ResourceID.String()),
			)
		}
		return nil, err
	}

	rec := &domain.DispatchRecord{
		ResourceID:       decision.ResourceID,
		SOSReportID:      req.SOSReportID,
		DisasterLocation: incident.Location,
		EmergencyType:    req.EmergencyType,
		Severity:         req.Severity,
		DistanceKm:       decision.DistanceKm,
		EstimatedArrival: time.Now().UTC().Add(time.Duration(decision.EstimatedArrivalMinutes * float64(time.Minute))),
		DispatchedAt:     time.Now().UTC(),
		Status:           domain.DispatchDispatched,
	}
	if err := s.dispatches.CreateRecord(ctx, rec); err != nil {
		// The resource is already committed busy; surface the record
		// failure rather than pretending the dispatch is untracked.
		return nil, err
	}

	s.logger.Info("resource dispatched",
		slog.String("resource_id", decision.ResourceID.String()),
		slog.String("type", string(decision.ResourceType)),
		slog.Float64("distance_km", decision.DistanceKm),
	)
	return &decision, nil
}

func (s *dispatchService) NearbyResources(ctx context.Context, req domain.NearbyResourcesRequest) ([]domain.NearbyResource, error) {
	const op = "service.Dispatch.NearbyResources"

	center := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !center.InRange() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	radius := req.RadiusKm
	if radius <= 0 {
		radius = s.searchRadiusKm
	}

	wantType := make(map[domain.ResourceType]struct{}, len(req.Types))
	for _, t := range req.Types {
		wantType[t] = struct{}{}
	}

	available := domain.ResourceAvailable
	resources, err := s.resources.List(ctx, &available)
	if err != nil {
		return nil, err
	}

	nearby := make([]domain.NearbyResource, 0, len(resources))
	for _, r := range resources {
		if len(wantType) > 0 {
			if _, ok := wantType[r.Type]; !ok {
				continue
			}
		}
		d, err := geo.DistanceKm(center, r.Location)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if d > radius {
			continue
		}
		bearing, err := geo.BearingDeg(center, r.Location)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// Single-candidate selection reuses the engine's speed and ETA
		// policy instead of duplicating it here.
		decision, err := s.eng.SelectResource(engine.Incident{Location: center}, []domain.Resource{r}, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		nearby = append(nearby, domain.NearbyResource{
			Resource:                r,
			DistanceKm:              d,
			BearingDeg:              bearing,
			EstimatedArrivalMinutes: decision.EstimatedArrivalMinutes,
		})
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	return nearby, nil
}

// ActiveDispatches joins the in-flight records with the current state
// of their resources. A record whose resource has been deleted is
// skipped rather than failing the whole listing.
func (s *dispatchService) ActiveDispatches(ctx context.Context) ([]domain.ActiveDispatch, error) {
	records, err := s.dispatches.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Resource, len(resources))
	for _, r := range resources {
		byID[r.ID] = r
	}

	active := make([]domain.ActiveDispatch, 0, len(records))
	for _, rec := range records {
		res, ok := byID[rec.ResourceID]
		if !ok {
			s.logger.Warn("dispatch record without resource",
				slog.String("dispatch_id", rec.ID.String()),
				slog.String("resource_id", rec.ResourceID.String()),
			)
			continue
		}
		active = append(active, domain.ActiveDispatch{
			Record:           rec,
			ResourceName:     res.Name,
			ResourceType:     res.Type,
			ResourceLocation: res.Location,
		})
	}
	return active, nil
}

func (s *dispatchService) GetDispatch(ctx context.Context, id uuid.UUID) (*domain.DispatchRecord, error) {
	return s.dispatches.Get(ctx, id)
}

// UpdateDispatchStatus moves a record through its lifecycle. The
// completed transition frees the resource back to available; the
// conditional update on the record guarantees that release happens at
// most once even when two completions race.
func (s *dispatchService) UpdateDispatchStatus(ctx context.Context, id uuid.UUID, req domain.UpdateDispatchStatusRequest) error {
	const op = "service.Dispatch.UpdateDispatchStatus"

	if !req.Status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rec, err := s.dispatches.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dispatches.UpdateStatus(ctx, id, req.Status); err != nil {
		return err
	}

	if req.Status == domain.DispatchCompleted {
		if err := s.resources.UpdateStatus(ctx, rec.ResourceID, domain.ResourceAvailable); err != nil {
			s.logger.Error("resource release failed after dispatch completion",
				slog.String("op", op),
				slog.String("dispatch_id", id.String()),
				slog.String("resource_id", rec.ResourceID.String()),
				slog.Any("error", err),
			)
			return err
		}
	}

	s.logger.Info("dispatch status updated",
		slog.String("dispatch_id", id.String()),
		slog.String("status", string(req.Status)),
	)
	return nil
}
