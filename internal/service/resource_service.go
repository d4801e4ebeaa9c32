package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type resourceService struct {
	repo   ResourceRepository
	logger *slog.Logger
}

func NewResourceService(repo ResourceRepository, logger *slog.Logger) ResourceService {
	return &resourceService{repo: repo, logger: logger}
}

func (s *resourceService) Create(ctx context.Context, req domain.CreateResourceRequest) (uuid.UUID, error) {
	const op = "service.Resource.Create"

	if !req.Type.Valid() {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	loc := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !loc.InRange() {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	r := &domain.Resource{
		ID:        uuid.New(),
		Name:      req.Name,
		Type:      req.Type,
		Status:    domain.ResourceAvailable,
		Location:  loc,
		SpeedKmh:  req.SpeedKmh,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("resource created",
		slog.String("id", r.ID.String()),
		slog.String("type", string(r.Type)),
	)
	return r.ID, nil
}

func (s *resourceService) List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error) {
	return s.repo.List(ctx, status)
}

func (s *resourceService) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return s.repo.Get(ctx, id)
}

func (s *resourceService) UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateResourceLocationRequest) error {
	const op = "service.Resource.UpdateLocation"

	loc := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !loc.InRange() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	return s.repo.UpdateLocation(ctx, id, loc)
}

func (s *resourceService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateResourceStatusRequest) error {
	const op = "service.Resource.UpdateStatus"

	if !req.Status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}
