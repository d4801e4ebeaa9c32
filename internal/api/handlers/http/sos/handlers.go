package sos

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
type SOSReports interface {
	CreateReport(ctx context.Context, req domain.CreateSOSRequest) (*domain.SOSReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSReport, error)
	ListActive(ctx context.Context, limit int, emergencyType *domain.EmergencyType) ([]domain.SOSReport, error)
	Acknowledge(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, id uuid.UUID) error
	FindNearby(ctx context.Context, req domain.NearbySOSRequest) ([]domain.NearbySOS, error)
	ClusterActive(ctx context.Context, radiusKm float64) ([]domain.Cluster, error)
	Analytics(ctx context.Context) (*domain.SOSAnalytics, error)
}

type AssistanceOffers interface {
	Offer(ctx context.Context, sosID uuid.UUID, req domain.OfferAssistanceRequest) (*domain.RankedOffer, error)
	ListForReport(ctx context.Context, sosID uuid.UUID, limit int, includeAccepted bool) ([]domain.RankedOffer, error)
	Accept(ctx context.Context, offerID uuid.UUID) (*domain.AcceptedOffer, error)
}

type AlertBroadcaster interface {
	Broadcast(ctx context.Context, req domain.BroadcastAlertRequest) (*domain.AlertBroadcast, error)
}

type Handler struct {
	logger     *slog.Logger
	SOS        SOSReports
	Assistance AssistanceOffers
	Alerts     AlertBroadcaster
}

func NewHandler(logger *slog.Logger, sos SOSReports, assistance AssistanceOffers, alerts AlertBroadcaster) *Handler {
	return &Handler{
		logger:     logger,
		SOS:        sos,
		Assistance: assistance,
		Alerts:     alerts,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SOSReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateSOSRequest
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

	report, err := h.SOS.CreateReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sos report created", slog.String("id", report.ID.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) SOSReportGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	report, err := h.SOS.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) SOSActiveList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := parseInt(q.Get("limit"), 0)

	var emergencyType *domain.EmergencyType
	if t := q.Get("type"); t != "" {
		et := domain.EmergencyType(t)
		if !et.Valid() {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid emergency type"})
			return
		}
		emergencyType = &et
	}

	reports, err := h.SOS.ListActive(r.Context(), limit, emergencyType)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

func (h *Handler) SOSAcknowledge(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.SOS.Acknowledge(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SOSResolve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.SOS.Resolve(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SOSNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	q := r.URL.Query()

	lat, latErr := parseFloat(q.Get("lat"))
	lng, lngErr := parseFloat(q.Get("lng"))
	if latErr != nil || lngErr != nil {
		l.Warn("invalid coordinates in query", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return
	}

	req := domain.NearbySOSRequest{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: parseFloatDefault(q.Get("radius_km"), 0),
		Limit:    parseInt(q.Get("limit"), 0),
	}

	nearby, err := h.SOS.FindNearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": nearby,
		"count":   len(nearby),
	})
}

func (h *Handler) SOSClustered(w http.ResponseWriter, r *http.Request) {
	radius := parseFloatDefault(r.URL.Query().Get("radius_km"), 0)

	clusters, err := h.SOS.ClusterActive(r.Context(), radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"clusters": clusters,
		"count":    len(clusters),
	})
}

func (h *Handler) SOSAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.SOS.Analytics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AssistOffer(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.OfferAssistanceRequest
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

	offer, err := h.Assistance.Offer(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("assistance offered", slog.String("sos_id", id.String()))
	h.writeJSON(w, http.StatusCreated, offer)
}

func (h *Handler) AssistanceList(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	limit := parseInt(q.Get("limit"), 0)
	includeAccepted := q.Get("include_accepted") == "true"

	offers, err := h.Assistance.ListForReport(r.Context(), id, limit, includeAccepted)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"offers": offers,
		"count":  len(offers),
	})
}

func (h *Handler) AssistanceAccept(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	accepted, err := h.Assistance.Accept(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("assistance accepted", slog.String("offer_id", id.String()))
	h.writeJSON(w, http.StatusOK, accepted)
}

func (h *Handler) AlertBroadcast(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.BroadcastAlertRequest
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

	alert, err := h.Alerts.Broadcast(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert broadcast", slog.String("id", alert.ID.String()), slog.String("scope", string(alert.Scope)))
	h.writeJSON(w, http.StatusCreated, alert)
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
