package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/service"
	mock_service "github.com/Dipanshu93198/DRS/internal/service/mocks"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

func TestResourceService_Create_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockResourceRepository(ctrl)

	var created *domain.Resource
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Resource) error {
			created = r
			return nil
		}).
		Times(1)

	svc := service.NewResourceService(repo, testLogger())

	id, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name: "city ambulance 7",
		Type: domain.ResourceAmbulance,
		Lat:  28.6139,
		Lng:  77.2090,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("id is nil")
	}
	if created == nil || created.Status != domain.ResourceAvailable {
		t.Fatalf("new resource must start available, got %+v", created)
	}
}

func TestResourceService_Create_InvalidType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockResourceRepository(ctrl)
	svc := service.NewResourceService(repo, testLogger())

	_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name: "x",
		Type: "helicopter",
		Lat:  28.6139,
		Lng:  77.2090,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestResourceService_UpdateLocation_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockResourceRepository(ctrl)
	svc := service.NewResourceService(repo, testLogger())

	err := svc.UpdateLocation(context.Background(), uuid.New(), domain.UpdateResourceLocationRequest{Lat: 0, Lng: 181})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("error = %v, want ErrInvalidCoordinates", err)
	}
}

func TestResourceService_UpdateStatus_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockResourceRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.ResourceOffline).Return(nil).Times(1)

	svc := service.NewResourceService(repo, testLogger())

	if err := svc.UpdateStatus(context.Background(), id, domain.UpdateResourceStatusRequest{Status: domain.ResourceOffline}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
}

func TestResourceService_UpdateStatus_Invalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockResourceRepository(ctrl)
	svc := service.NewResourceService(repo, testLogger())

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.UpdateResourceStatusRequest{Status: "parked"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
