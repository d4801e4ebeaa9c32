package service

import (
	"context"
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

type sosService struct {
	repo            SOSRepository
	stats           StatsRepository
	cache           SOSCacheService
	alerts          AlertService
	eng             *engine.Engine
	logger          *slog.Logger
	searchRadiusKm  float64
	clusterRadiusKm float64
	snapshotTTL     time.Duration
}

func NewSOSService(
	repo SOSRepository,
	stats StatsRepository,
	cache SOSCacheService,
	alerts AlertService,
	eng *engine.Engine,
	logger *slog.Logger,
	searchRadiusKm, clusterRadiusKm float64,
	snapshotTTL time.Duration,
) SOSService {
	if searchRadiusKm <= 0 {
		searchRadiusKm = 10.0
	}
	if clusterRadiusKm <= 0 {
		clusterRadiusKm = 2.0
	}
	if snapshotTTL <= 0 {
		snapshotTTL = 30 * time.Second
	}
	return &sosService{
		repo:            repo,
		stats:           stats,
		cache:           cache,
		alerts:          alerts,
		eng:             eng,
		logger:          logger,
		searchRadiusKm:  searchRadiusKm,
		clusterRadiusKm: clusterRadiusKm,
		snapshotTTL:     snapshotTTL,
	}
}

func (s *sosService) CreateReport(ctx context.Context, req domain.CreateSOSRequest) (*domain.SOSReport, error) {
	const op = "service.SOS.CreateReport"

	if !req.EmergencyType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	loc := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !loc.InRange() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	people := req.NumPeopleAffected
	if people < 1 {
		people = 1
	}

	report := &domain.SOSReport{
		ID:                 uuid.New(),
		ReporterName:       req.ReporterName,
		ReporterPhone:      req.ReporterPhone,
		Location:           loc,
		EmergencyType:      req.EmergencyType,
		Description:        req.Description,
		Severity:           req.Severity,
		NumPeopleAffected:  people,
		IsUrgent:           req.IsUrgent,
		Status:             domain.SOSPending,
		ReportedAt:         time.Now().UTC(),
		CrowdAssistEnabled: req.CrowdAssistEnabled,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)

	// Broadcast failure must not undo a stored report; the alert can be
	// re-sent, the report cannot be re-reported.
	msg := fmt.Sprintf("New %s emergency reported near (%.4f, %.4f). Severity: %.1f/10",
		report.EmergencyType, report.Location.Lat, report.Location.Lng, report.Severity)
	if _, err := s.alerts.Broadcast(ctx, domain.BroadcastAlertRequest{
		SOSReportID: report.ID,
		AlertType:   domain.AlertNewSOS,
		Message:     msg,
	}); err != nil {
		s.logger.Error("new sos alert broadcast failed",
			slog.String("op", op),
			slog.String("sos_id", report.ID.String()),
			slog.Any("error", err),
		)
	}

	s.logger.Info("sos report created",
		slog.String("id", report.ID.String()),
		slog.String("type", string(report.EmergencyType)),
		slog.Float64("severity", report.Severity),
	)
	return report, nil
}

func (s *sosService) Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error) {
	return s.repo.Get(ctx, id)
}

func (s *sosService) ListActive(ctx context.Context, limit int, emergencyType *domain.EmergencyType) ([]domain.SOSReport, error) {
	const op = "service.SOS.ListActive"

	if emergencyType == nil {
		return s.repo.ListActive(ctx, limit)
	}
	if !emergencyType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// The type filter runs over the full active set so the limit
	// applies after filtering, not before.
	reports, err := s.repo.ListActive(ctx, 0)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.SOSReport, 0, len(reports))
	for _, r := range reports {
		if r.EmergencyType == *emergencyType {
			filtered = append(filtered, r)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (s *sosService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateSOSStatusRequest) error {
	const op = "service.SOS.UpdateStatus"

	if !req.Status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status, req.NearestResourceID); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *sosService) Acknowledge(ctx context.Context, id uuid.UUID) error {
	return s.UpdateStatus(ctx, id, domain.UpdateSOSStatusRequest{Status: domain.SOSAcknowledged})
}

func (s *sosService) Resolve(ctx context.Context, id uuid.UUID) error {
	return s.UpdateStatus(ctx, id, domain.UpdateSOSStatusRequest{Status: domain.SOSResolved})
}

func (s *sosService) FindNearby(ctx context.Context, req domain.NearbySOSRequest) ([]domain.NearbySOS, error) {
	const op = "service.SOS.FindNearby"

	center := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !center.InRange() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	radius := req.RadiusKm
	if radius <= 0 {
		radius = s.searchRadiusKm
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	reports, err := s.activeReports(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]domain.NearbySOS, 0, len(reports))
	for _, r := range reports {
		d, err := geo.DistanceKm(center, r.Location)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if d <= radius {
			nearby = append(nearby, domain.NearbySOS{Report: r, DistanceKm: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

func (s *sosService) ClusterActive(ctx context.Context, radiusKm float64) ([]domain.Cluster, error) {
	if radiusKm <= 0 {
		radiusKm = s.clusterRadiusKm
	}

	reports, err := s.activeReports(ctx)
	if err != nil {
		return nil, err
	}
	return s.eng.Cluster(reports, radiusKm)
}

func (s *sosService) Analytics(ctx context.Context) (*domain.SOSAnalytics, error) {
	return s.stats.GetAnalytics(ctx)
}

// activeReports prefers the redis snapshot and falls back to postgres,
// refreshing the snapshot on a miss.
func (s *sosService) activeReports(ctx context.Context) ([]domain.SOSReport, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("sos snapshot read failed, using storage", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	reports, err := s.repo.ListActive(ctx, 0)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, reports, s.snapshotTTL); err != nil {
			s.logger.Warn("sos snapshot write failed", slog.Any("error", err))
		}
	}
	return reports, nil
}

func (s *sosService) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("sos snapshot invalidate failed", slog.Any("error", err))
	}
}
