package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/engine"
	"github.com/Dipanshu93198/DRS/internal/service"
	mock_service "github.com/Dipanshu93198/DRS/internal/service/mocks"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *engine.Engine {
	return engine.New(engine.DefaultConfig())
}

func activeReport(lat, lng, severity float64) domain.SOSReport {
	return domain.SOSReport{
		ID:            uuid.New(),
		ReporterName:  "reporter",
		ReporterPhone: "+911234567890",
		Location:      domain.GeoPoint{Lat: lat, Lng: lng},
		EmergencyType: domain.EmergencyMedical,
		Severity:      severity,
		Status:        domain.SOSPending,
		ReportedAt:    time.Now().UTC(),
	}
}

func TestSOSService_CreateReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	var created *domain.SOSReport
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.SOSReport) error {
			created = r
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	alerts.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.BroadcastAlertRequest) (*domain.AlertBroadcast, error) {
			if req.AlertType != domain.AlertNewSOS {
				t.Errorf("alert type = %s, want %s", req.AlertType, domain.AlertNewSOS)
			}
			return &domain.AlertBroadcast{ID: uuid.New()}, nil
		}).
		Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.CreateReport(context.Background(), domain.CreateSOSRequest{
		ReporterName:  "reporter",
		ReporterPhone: "+911234567890",
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyFire,
		Severity:      6.5,
	})
	if err != nil {
		t.Fatalf("CreateReport() error = %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatalf("report ID is nil")
	}
	if got.Status != domain.SOSPending {
		t.Errorf("status = %s, want pending", got.Status)
	}
	if got.NumPeopleAffected != 1 {
		t.Errorf("num people = %d, want default 1", got.NumPeopleAffected)
	}
	if created == nil || created.ID != got.ID {
		t.Fatalf("stored report does not match returned report")
	}
}

func TestSOSService_CreateReport_InvalidType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	_, err := svc.CreateReport(context.Background(), domain.CreateSOSRequest{
		ReporterName:  "reporter",
		ReporterPhone: "+911234567890",
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: "earthquake",
		Severity:      5,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSOSService_CreateReport_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	_, err := svc.CreateReport(context.Background(), domain.CreateSOSRequest{
		ReporterName:  "reporter",
		ReporterPhone: "+911234567890",
		Lat:           91,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyFire,
		Severity:      5,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("error = %v, want ErrInvalidCoordinates", err)
	}
}

func TestSOSService_CreateReport_AlertFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	alerts.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("queue down")).
		Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.CreateReport(context.Background(), domain.CreateSOSRequest{
		ReporterName:  "reporter",
		ReporterPhone: "+911234567890",
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyFlooding,
		Severity:      8,
	})
	if err != nil {
		t.Fatalf("CreateReport() error = %v, want nil despite broadcast failure", err)
	}
	if got == nil {
		t.Fatalf("report is nil")
	}
}

func TestSOSService_ListActive_PassesLimitThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	want := []domain.SOSReport{activeReport(28.61, 77.21, 5)}
	repo.EXPECT().ListActive(gomock.Any(), 25).Return(want, nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.ListActive(context.Background(), 25, nil)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Fatalf("got %+v, want repo result passed through", got)
	}
}

func TestSOSService_ListActive_TypeFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	fire1 := activeReport(28.61, 77.21, 5)
	fire1.EmergencyType = domain.EmergencyFire
	fire2 := activeReport(28.63, 77.22, 7)
	fire2.EmergencyType = domain.EmergencyFire
	medical := activeReport(28.62, 77.21, 4)

	// The filter fetches the whole active set so the limit applies to
	// the filtered result.
	repo.EXPECT().
		ListActive(gomock.Any(), 0).
		Return([]domain.SOSReport{fire1, medical, fire2}, nil).
		Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	fire := domain.EmergencyFire
	got, err := svc.ListActive(context.Background(), 1, &fire)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports, want limit applied after filtering", len(got))
	}
	if got[0].EmergencyType != domain.EmergencyFire {
		t.Errorf("report type = %s, want fire", got[0].EmergencyType)
	}
}

func TestSOSService_ListActive_InvalidTypeFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	bad := domain.EmergencyType("meteor")
	_, err := svc.ListActive(context.Background(), 0, &bad)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSOSService_UpdateStatus_InvalidatesSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	id := uuid.New()
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.SOSAcknowledged, gomock.Nil()).
		Return(nil).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	if err := svc.Acknowledge(context.Background(), id); err != nil {
		t.Fatalf("Acknowledge() error = %v", err)
	}
}

func TestSOSService_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.UpdateSOSStatusRequest{Status: "done"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSOSService_FindNearby_CacheMissFallsBackToStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	near := activeReport(28.6139, 77.2090, 6)
	far := activeReport(28.7139, 77.2090, 6) // ~11 km north

	cache.EXPECT().GetActive(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().ListActive(gomock.Any(), 0).Return([]domain.SOSReport{far, near}, nil).Times(1)
	cache.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.FindNearby(context.Background(), domain.NearbySOSRequest{
		Lat:      28.6139,
		Lng:      77.2090,
		RadiusKm: 5,
	})
	if err != nil {
		t.Fatalf("FindNearby() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1 inside radius", len(got))
	}
	if got[0].Report.ID != near.ID {
		t.Errorf("got report %s, want the near one %s", got[0].Report.ID, near.ID)
	}
}

func TestSOSService_FindNearby_CacheHitSkipsStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	r := activeReport(28.6139, 77.2090, 6)
	cache.EXPECT().GetActive(gomock.Any()).Return([]domain.SOSReport{r}, nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.FindNearby(context.Background(), domain.NearbySOSRequest{Lat: 28.6139, Lng: 77.2090})
	if err != nil {
		t.Fatalf("FindNearby() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1 from cache", len(got))
	}
}

func TestSOSService_ClusterActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	a := activeReport(28.6139, 77.2090, 6)
	b := activeReport(28.6149, 77.2090, 8) // ~110 m from a
	cache.EXPECT().GetActive(gomock.Any()).Return([]domain.SOSReport{a, b}, nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	clusters, err := svc.ClusterActive(context.Background(), 0)
	if err != nil {
		t.Fatalf("ClusterActive() error = %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1", len(clusters))
	}
	if clusters[0].IncidentCount != 2 {
		t.Errorf("cluster count = %d, want 2", clusters[0].IncidentCount)
	}
}

func TestSOSService_Analytics_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSOSRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockSOSCacheService(ctrl)
	alerts := mock_service.NewMockAlertService(ctrl)

	want := &domain.SOSAnalytics{TotalActive: 3, MostCommonType: "fire"}
	stats.EXPECT().GetAnalytics(gomock.Any()).Return(want, nil).Times(1)

	svc := service.NewSOSService(repo, stats, cache, alerts, testEngine(), testLogger(), 10, 2, time.Second)

	got, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}
	if got != want {
		t.Fatalf("Analytics() = %+v, want %+v", got, want)
	}
}
