package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// SOSService covers the citizen reporting lifecycle plus the derived
// views (nearby search, clustering, analytics).
type SOSService interface {
	CreateReport(ctx context.Context, req domain.CreateSOSRequest) (*domain.SOSReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error)
	ListActive(ctx context.Context, limit int, emergencyType *domain.EmergencyType) ([]domain.SOSReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateSOSStatusRequest) error
	Acknowledge(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, id uuid.UUID) error
	FindNearby(ctx context.Context, req domain.NearbySOSRequest) ([]domain.NearbySOS, error)
	ClusterActive(ctx context.Context, radiusKm float64) ([]domain.Cluster, error)
	Analytics(ctx context.Context) (*domain.SOSAnalytics, error)
}

type DispatchService interface {
	AutoDispatch(ctx context.Context, req domain.AutoDispatchRequest) (*domain.DispatchDecision, error)
	NearbyResources(ctx context.Context, req domain.NearbyResourcesRequest) ([]domain.NearbyResource, error)
	ActiveDispatches(ctx context.Context) ([]domain.ActiveDispatch, error)
	GetDispatch(ctx context.Context, id uuid.UUID) (*domain.DispatchRecord, error)
	UpdateDispatchStatus(ctx context.Context, id uuid.UUID, req domain.UpdateDispatchStatusRequest) error
}

type AssistanceService interface {
	Offer(ctx context.Context, sosID uuid.UUID, req domain.OfferAssistanceRequest) (*domain.RankedOffer, error)
	ListForReport(ctx context.Context, sosID uuid.UUID, limit int, includeAccepted bool) ([]domain.RankedOffer, error)
	Accept(ctx context.Context, offerID uuid.UUID) (*domain.AcceptedOffer, error)
}

type ResourceService interface {
	Create(ctx context.Context, req domain.CreateResourceRequest) (uuid.UUID, error)
	List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateResourceLocationRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateResourceStatusRequest) error
}

type AlertService interface {
	Broadcast(ctx context.Context, req domain.BroadcastAlertRequest) (*domain.AlertBroadcast, error)
}

// Repository dependencies, declared here so the service layer never
// imports the storage package and mocks come out of one file.

type SOSRepository interface {
	Create(ctx context.Context, report *domain.SOSReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error)
	ListActive(ctx context.Context, limit int) ([]domain.SOSReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SOSStatus, nearestResourceID *uuid.UUID) error
}

type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) error
	List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.GeoPoint) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ResourceStatus) error
	MarkDispatched(ctx context.Context, id uuid.UUID) error
}

type AssistanceRepository interface {
	Create(ctx context.Context, offer *domain.AssistanceOffer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.AssistanceOffer, error)
	ListForReport(ctx context.Context, sosID uuid.UUID, openOnly bool) ([]domain.AssistanceOffer, error)
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

type SOSCacheService interface {
	GetActive(ctx context.Context) ([]domain.SOSReport, error)
	SetActive(ctx context.Context, reports []domain.SOSReport, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type Service struct {
	SOS        SOSService
	Dispatch   DispatchService
	Assistance AssistanceService
	Resource   ResourceService
	Alert      AlertService
}

func NewService(
	sos SOSService,
	dispatch DispatchService,
	assistance AssistanceService,
	resource ResourceService,
	alert AlertService,
) *Service {
	return &Service{
		SOS:        sos,
		Dispatch:   dispatch,
		Assistance: assistance,
		Resource:   resource,
		Alert:      alert,
	}
}
