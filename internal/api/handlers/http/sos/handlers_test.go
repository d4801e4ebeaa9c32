package sos_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/sos"
	mock_sos "github.com/Dipanshu93198/DRS/internal/api/handlers/http/sos/mocks"
	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type handlerMocks struct {
	reports    *mock_sos.MockSOSReports
	assistance *mock_sos.MockAssistanceOffers
	alerts     *mock_sos.MockAlertBroadcaster
}

func newHandler(t *testing.T) (*handlerMocks, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &handlerMocks{
		reports:    mock_sos.NewMockSOSReports(ctrl),
		assistance: mock_sos.NewMockAssistanceOffers(ctrl),
		alerts:     mock_sos.NewMockAlertBroadcaster(ctrl),
	}
	h := sos.NewHandler(newTestLogger(), m.reports, m.assistance, m.alerts)

	r := chi.NewRouter()
	r.Post("/sos/report", h.SOSReportCreate)
	r.Get("/sos/active", h.SOSActiveList)
	r.Get("/sos/nearby", h.SOSNearby)
	r.Get("/sos/clustered", h.SOSClustered)
	r.Get("/sos/analytics", h.SOSAnalytics)
	r.Get("/sos/{id}", h.SOSReportGet)
	r.Post("/sos/{id}/acknowledge", h.SOSAcknowledge)
	r.Post("/sos/{id}/resolve", h.SOSResolve)
	r.Post("/sos/{id}/assist", h.AssistOffer)
	r.Get("/sos/{id}/assistance", h.AssistanceList)
	r.Post("/assistance/{id}/accept", h.AssistanceAccept)
	r.Post("/alerts/broadcast", h.AlertBroadcast)
	return m, r
}

func TestSOSReportCreate_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	want := &domain.SOSReport{
		ID:            uuid.New(),
		ReporterName:  "Asha",
		EmergencyType: domain.EmergencyFire,
		Severity:      7.5,
		Status:        domain.SOSPending,
		ReportedAt:    time.Now().UTC(),
	}
	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(want, nil).
		Times(1)

	body := `{"reporter_name":"Asha","reporter_phone":"+911234567890","lat":28.6139,"lng":77.209,"emergency_type":"fire","severity":7.5}`
	req := httptest.NewRequest(http.MethodPost, "/sos/report", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SOSReport](t, rr)
	if got.ID != want.ID {
		t.Fatalf("id = %s, want %s", got.ID, want.ID)
	}
}

func TestSOSReportCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sos/report", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSReportCreate_ValidationFailure_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	// lat out of range, caught by validation before the service is hit
	body := `{"reporter_name":"Asha","reporter_phone":"+911234567890","lat":95.0,"lng":77.209,"emergency_type":"fire","severity":7.5}`
	req := httptest.NewRequest(http.MethodPost, "/sos/report", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSReportGet_NotFound_404(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.reports.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/sos/"+id.String(), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSReportGet_BadID_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/sos/not-a-uuid", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSAcknowledge_NoContent(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.reports.EXPECT().Acknowledge(gomock.Any(), id).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/sos/%s/acknowledge", id), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSNearby_MissingCoords_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/sos/nearby?radius_km=5", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSNearby_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.reports.EXPECT().
		FindNearby(gomock.Any(), domain.NearbySOSRequest{Lat: 28.6139, Lng: 77.209, RadiusKm: 5, Limit: 10}).
		Return([]domain.NearbySOS{{DistanceKm: 1.2}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/sos/nearby?lat=28.6139&lng=77.209&radius_km=5&limit=10", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]json.RawMessage](t, rr)
	if _, ok := got["reports"]; !ok {
		t.Fatalf("response missing reports key: %s", rr.Body.String())
	}
}

func TestSOSClustered_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.reports.EXPECT().
		ClusterActive(gomock.Any(), 3.0).
		Return([]domain.Cluster{{IncidentCount: 2}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/sos/clustered?radius_km=3", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAssistOffer_CrowdDisabled_409(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.assistance.EXPECT().
		Offer(gomock.Any(), id, gomock.Any()).
		Return(nil, e.ErrConflict).
		Times(1)

	body := `{"helper_name":"Ravi","helper_phone":"+911112223334","lat":28.62,"lng":77.21,"assistance_type":"medical"}`
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/sos/%s/assist", id), bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAssistanceAccept_AlreadyAccepted_409(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.assistance.EXPECT().
		Accept(gomock.Any(), id).
		Return(nil, e.ErrAlreadyAccepted).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/assistance/%s/accept", id), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAssistanceAccept_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	want := &domain.AcceptedOffer{OfferID: id, SOSReportID: uuid.New(), AcceptedAt: time.Now().UTC()}
	m.assistance.EXPECT().Accept(gomock.Any(), id).Return(want, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/assistance/%s/accept", id), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.AcceptedOffer](t, rr)
	if got.OfferID != id {
		t.Fatalf("offer id = %s, want %s", got.OfferID, id)
	}
}

func TestAlertBroadcast_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	sosID := uuid.New()
	want := &domain.AlertBroadcast{
		ID:          uuid.New(),
		SOSReportID: sosID,
		Scope:       domain.ScopeDistrict,
	}
	m.alerts.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(want, nil).Times(1)

	body := fmt.Sprintf(`{"sos_report_id":%q,"alert_type":"new_sos","message":"flood rising"}`, sosID)
	req := httptest.NewRequest(http.MethodPost, "/alerts/broadcast", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAlertBroadcast_BadScopeOverride_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	body := fmt.Sprintf(`{"sos_report_id":%q,"alert_type":"new_sos","message":"x","scope_override":"galactic"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/alerts/broadcast", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSOSAnalytics_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.reports.EXPECT().
		Analytics(gomock.Any()).
		Return(&domain.SOSAnalytics{TotalActive: 4, MostCommonType: "flooding"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/sos/analytics", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SOSAnalytics](t, rr)
	if got.TotalActive != 4 {
		t.Fatalf("total active = %d, want 4", got.TotalActive)
	}
}

func TestSOSActiveList_TypeFilter(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	fire := domain.EmergencyFire
	want := []domain.SOSReport{
		{ID: uuid.New(), EmergencyType: domain.EmergencyFire, Status: domain.SOSPending},
	}
	m.reports.EXPECT().
		ListActive(gomock.Any(), 10, &fire).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/sos/active?limit=10&type=fire", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]json.RawMessage](t, rr)
	var count int
	if err := json.Unmarshal(got["count"], &count); err != nil || count != 1 {
		t.Fatalf("count = %s, want 1", got["count"])
	}
}

func TestSOSActiveList_InvalidType_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/sos/active?type=meteor", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}
