package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/service"
	mock_service "github.com/Dipanshu93198/DRS/internal/service/mocks"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

func availableResource(name string, typ domain.ResourceType, lat, lng float64) domain.Resource {
	return domain.Resource{
		ID:        uuid.New(),
		Name:      name,
		Type:      typ,
		Status:    domain.ResourceAvailable,
		Location:  domain.GeoPoint{Lat: lat, Lng: lng},
		UpdatedAt: time.Now().UTC(),
	}
}

func TestDispatchService_AutoDispatch_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	near := availableResource("unit-1", domain.ResourceAmbulance, 28.6239, 77.2090) // ~1.1 km
	far := availableResource("unit-2", domain.ResourceAmbulance, 28.7139, 77.2090)  // ~11 km

	resources.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return([]domain.Resource{far, near}, nil).
		Times(1)
	resources.EXPECT().MarkDispatched(gomock.Any(), near.ID).Return(nil).Times(1)

	var rec *domain.DispatchRecord
	dispatches.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.DispatchRecord) error {
			rec = r
			return nil
		}).
		Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	got, err := svc.AutoDispatch(context.Background(), domain.AutoDispatchRequest{
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyMedical,
		Severity:      6,
	})
	if err != nil {
		t.Fatalf("AutoDispatch() error = %v", err)
	}
	if got.ResourceID != near.ID {
		t.Errorf("dispatched %s, want nearest %s", got.ResourceID, near.ID)
	}
	if rec == nil || rec.ResourceID != near.ID {
		t.Fatalf("dispatch record missing or for wrong resource")
	}
	if rec.DistanceKm != got.DistanceKm {
		t.Errorf("record distance = %v, decision distance = %v", rec.DistanceKm, got.DistanceKm)
	}
	if rec.Status != domain.DispatchDispatched {
		t.Errorf("record status = %s, want dispatched", rec.Status)
	}
}

func TestDispatchService_AutoDispatch_RaceLost(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	r := availableResource("unit-1", domain.ResourceAmbulance, 28.6239, 77.2090)
	resources.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Resource{r}, nil).Times(1)
	resources.EXPECT().MarkDispatched(gomock.Any(), r.ID).Return(e.ErrConflict).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	_, err := svc.AutoDispatch(context.Background(), domain.AutoDispatchRequest{
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyMedical,
		Severity:      6,
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict when a concurrent dispatch wins", err)
	}
}

func TestDispatchService_AutoDispatch_NoneAvailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	resources.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	_, err := svc.AutoDispatch(context.Background(), domain.AutoDispatchRequest{
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyMedical,
		Severity:      6,
	})
	if !errors.Is(err, e.ErrNoResourceAvailable) {
		t.Fatalf("error = %v, want ErrNoResourceAvailable", err)
	}
}

func TestDispatchService_AutoDispatch_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	resources.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, e.ErrInternal).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	_, err := svc.AutoDispatch(context.Background(), domain.AutoDispatchRequest{
		Lat:           28.6139,
		Lng:           77.2090,
		EmergencyType: domain.EmergencyMedical,
		Severity:      6,
	})
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("error = %v, want ErrInternal", err)
	}
}

func TestDispatchService_NearbyResources_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	ambNear := availableResource("amb-near", domain.ResourceAmbulance, 28.6239, 77.2090)
	ambFar := availableResource("amb-far", domain.ResourceAmbulance, 28.6539, 77.2090)
	drone := availableResource("drone", domain.ResourceDrone, 28.6159, 77.2090)
	outOfRange := availableResource("amb-away", domain.ResourceAmbulance, 29.6139, 77.2090)

	resources.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return([]domain.Resource{ambFar, outOfRange, drone, ambNear}, nil).
		Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	got, err := svc.NearbyResources(context.Background(), domain.NearbyResourcesRequest{
		Lat:      28.6139,
		Lng:      77.2090,
		RadiusKm: 10,
		Types:    []domain.ResourceType{domain.ResourceAmbulance},
	})
	if err != nil {
		t.Fatalf("NearbyResources() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d resources, want 2 ambulances in range", len(got))
	}
	if got[0].Resource.ID != ambNear.ID {
		t.Errorf("first = %s, want nearest ambulance", got[0].Resource.Name)
	}
	if got[0].EstimatedArrivalMinutes <= 0 {
		t.Errorf("eta = %v, want positive for nonzero distance", got[0].EstimatedArrivalMinutes)
	}
	if got[0].DistanceKm > got[1].DistanceKm {
		t.Errorf("results not sorted by distance: %v then %v", got[0].DistanceKm, got[1].DistanceKm)
	}
	// ambNear sits due north of the query point.
	if got[0].BearingDeg < 0 || got[0].BearingDeg >= 360 {
		t.Errorf("bearing = %v, want [0, 360)", got[0].BearingDeg)
	}
	if got[0].BearingDeg > 1 && got[0].BearingDeg < 359 {
		t.Errorf("bearing = %v, want roughly north", got[0].BearingDeg)
	}
}

func TestDispatchService_ActiveDispatches_JoinsResources(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	res := availableResource("unit-1", domain.ResourceAmbulance, 28.62, 77.21)
	orphanID := uuid.New()

	recs := []domain.DispatchRecord{
		{ID: uuid.New(), ResourceID: res.ID, Status: domain.DispatchEnRoute, DispatchedAt: time.Now().UTC()},
		{ID: uuid.New(), ResourceID: orphanID, Status: domain.DispatchDispatched, DispatchedAt: time.Now().UTC()},
	}
	dispatches.EXPECT().ListActive(gomock.Any()).Return(recs, nil).Times(1)
	resources.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]domain.Resource{res}, nil).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	got, err := svc.ActiveDispatches(context.Background())
	if err != nil {
		t.Fatalf("ActiveDispatches() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d dispatches, want 1 (orphaned record skipped)", len(got))
	}
	if got[0].Record.ID != recs[0].ID {
		t.Errorf("record id = %s, want %s", got[0].Record.ID, recs[0].ID)
	}
	if got[0].ResourceName != res.Name || got[0].ResourceLocation != res.Location {
		t.Errorf("resource join mismatch: %+v", got[0])
	}
}

func TestDispatchService_UpdateDispatchStatus_CompletedFreesResource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	resID := uuid.New()
	recID := uuid.New()
	rec := &domain.DispatchRecord{ID: recID, ResourceID: resID, Status: domain.DispatchArrived}

	dispatches.EXPECT().Get(gomock.Any(), recID).Return(rec, nil).Times(1)
	dispatches.EXPECT().UpdateStatus(gomock.Any(), recID, domain.DispatchCompleted).Return(nil).Times(1)
	resources.EXPECT().UpdateStatus(gomock.Any(), resID, domain.ResourceAvailable).Return(nil).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	err := svc.UpdateDispatchStatus(context.Background(), recID, domain.UpdateDispatchStatusRequest{
		Status: domain.DispatchCompleted,
	})
	if err != nil {
		t.Fatalf("UpdateDispatchStatus() error = %v", err)
	}
}

func TestDispatchService_UpdateDispatchStatus_EnRouteKeepsResourceBusy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	recID := uuid.New()
	rec := &domain.DispatchRecord{ID: recID, ResourceID: uuid.New(), Status: domain.DispatchDispatched}

	dispatches.EXPECT().Get(gomock.Any(), recID).Return(rec, nil).Times(1)
	dispatches.EXPECT().UpdateStatus(gomock.Any(), recID, domain.DispatchEnRoute).Return(nil).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	err := svc.UpdateDispatchStatus(context.Background(), recID, domain.UpdateDispatchStatusRequest{
		Status: domain.DispatchEnRoute,
	})
	if err != nil {
		t.Fatalf("UpdateDispatchStatus() error = %v", err)
	}
}

func TestDispatchService_UpdateDispatchStatus_TerminalConflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	recID := uuid.New()
	rec := &domain.DispatchRecord{ID: recID, ResourceID: uuid.New(), Status: domain.DispatchCompleted}

	dispatches.EXPECT().Get(gomock.Any(), recID).Return(rec, nil).Times(1)
	dispatches.EXPECT().UpdateStatus(gomock.Any(), recID, domain.DispatchCompleted).Return(e.ErrConflict).Times(1)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	err := svc.UpdateDispatchStatus(context.Background(), recID, domain.UpdateDispatchStatusRequest{
		Status: domain.DispatchCompleted,
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict for a terminal record", err)
	}
}

func TestDispatchService_UpdateDispatchStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	err := svc.UpdateDispatchStatus(context.Background(), uuid.New(), domain.UpdateDispatchStatusRequest{
		Status: "teleported",
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestDispatchService_NearbyResources_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := mock_service.NewMockResourceRepository(ctrl)
	dispatches := mock_service.NewMockDispatchRepository(ctrl)

	svc := service.NewDispatchService(resources, dispatches, testEngine(), testLogger(), 10)

	_, err := svc.NearbyResources(context.Background(), domain.NearbyResourcesRequest{Lat: -95, Lng: 0})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("error = %v, want ErrInvalidCoordinates", err)
	}
}
