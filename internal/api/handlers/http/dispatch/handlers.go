package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Dispatcher interface {
	AutoDispatch(ctx context.Context, req domain.AutoDispatchRequest) (*domain.DispatchDecision, error)
	NearbyResources(ctx context.Context, req domain.NearbyResourcesRequest) ([]domain.NearbyResource, error)
	ActiveDispatches(ctx context.Context) ([]domain.ActiveDispatch, error)
	GetDispatch(ctx context.Context, id uuid.UUID) (*domain.DispatchRecord, error)
	UpdateDispatchStatus(ctx context.Context, id uuid.UUID, req domain.UpdateDispatchStatusRequest) error
}

type Resources interface {
	Create(ctx context.Context, req domain.CreateResourceRequest) (uuid.UUID, error)
	List(ctx context.Context, status *domain.ResourceStatus) ([]domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateResourceLocationRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateResourceStatusRequest) error
}

type Handler struct {
	logger     *slog.Logger
	Dispatcher Dispatcher
	Resources  Resources
}

func NewHandler(logger *slog.Logger, dispatcher Dispatcher, resources Resources) *Handler {
	return &Handler{
		logger:     logger,
		Dispatcher: dispatcher,
		Resources:  resources,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DispatchAuto(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AutoDispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("auto dispatch requested",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.String("emergency_type", string(req.EmergencyType)),
		slog.Float64("severity", req.Severity),
	)

	decision, err := h.Dispatcher.AutoDispatch(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resource dispatched", slog.String("resource_id", decision.ResourceID.String()))
	h.writeJSON(w, http.StatusOK, decision)
}

func (h *Handler) DispatchNearbyResources(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	q := r.URL.Query()

	lat, latErr := parseFloat(q.Get("lat"))
	lng, lngErr := parseFloat(q.Get("lng"))
	if latErr != nil || lngErr != nil {
		l.Warn("invalid coordinates in query", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return
	}

	req := domain.NearbyResourcesRequest{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: parseFloatDefault(q.Get("radius_km"), 0),
	}
	for _, t := range q["type"] {
		req.Types = append(req.Types, domain.ResourceType(t))
	}

	resources, err := h.Dispatcher.NearbyResources(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"resources": resources,
		"count":     len(resources),
	})
}

func (h *Handler) DispatchActiveList(w http.ResponseWriter, r *http.Request) {
	dispatches, err := h.Dispatcher.ActiveDispatches(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"dispatches": dispatches,
		"count":      len(dispatches),
	})
}

func (h *Handler) DispatchGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.Dispatcher.GetDispatch(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) DispatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateDispatchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Dispatcher.UpdateDispatchStatus(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("dispatch status updated",
		slog.String("dispatch_id", id.String()),
		slog.String("status", string(req.Status)),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResourceCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Resources.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resource created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ResourceList(w http.ResponseWriter, r *http.Request) {
	var status *domain.ResourceStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.ResourceStatus(s)
		if !st.Valid() {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
		status = &st
	}

	resources, err := h.Resources.List(r.Context(), status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"resources": resources,
		"count":     len(resources),
	})
}

func (h *Handler) ResourceGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	resource, err := h.Resources.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resource)
}

func (h *Handler) ResourceUpdateLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateResourceLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Resources.UpdateLocation(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResourceUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateResourceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Resources.UpdateStatus(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
