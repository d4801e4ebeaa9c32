package dispatch_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/dispatch"
	mock_dispatch "github.com/Dipanshu93198/DRS/internal/api/handlers/http/dispatch/mocks"
	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type handlerMocks struct {
	dispatcher *mock_dispatch.MockDispatcher
	resources  *mock_dispatch.MockResources
}

func newHandler(t *testing.T) (*handlerMocks, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &handlerMocks{
		dispatcher: mock_dispatch.NewMockDispatcher(ctrl),
		resources:  mock_dispatch.NewMockResources(ctrl),
	}
	h := dispatch.NewHandler(newTestLogger(), m.dispatcher, m.resources)

	r := chi.NewRouter()
	r.Post("/dispatch/auto", h.DispatchAuto)
	r.Get("/dispatch/nearby-resources", h.DispatchNearbyResources)
	r.Get("/dispatch/active", h.DispatchActiveList)
	r.Get("/dispatch/{id}", h.DispatchGet)
	r.Put("/dispatch/{id}/status", h.DispatchUpdateStatus)
	r.Post("/resources", h.ResourceCreate)
	r.Get("/resources", h.ResourceList)
	r.Get("/resources/{id}", h.ResourceGet)
	r.Put("/resources/{id}/location", h.ResourceUpdateLocation)
	r.Put("/resources/{id}/status", h.ResourceUpdateStatus)
	return m, r
}

func TestDispatchAuto_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	want := &domain.DispatchDecision{
		ResourceID:              uuid.New(),
		ResourceName:            "city ambulance 7",
		ResourceType:            domain.ResourceAmbulance,
		DistanceKm:              1.2,
		EstimatedArrivalMinutes: 1.2,
	}
	m.dispatcher.EXPECT().
		AutoDispatch(gomock.Any(), gomock.Any()).
		Return(want, nil).
		Times(1)

	body := `{"lat":28.6139,"lng":77.209,"emergency_type":"medical","severity":6.0}`
	req := httptest.NewRequest(http.MethodPost, "/dispatch/auto", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	var got domain.DispatchDecision
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ResourceID != want.ResourceID {
		t.Fatalf("resource id = %s, want %s", got.ResourceID, want.ResourceID)
	}
}

func TestDispatchAuto_NoResource_404(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.dispatcher.EXPECT().
		AutoDispatch(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrNoResourceAvailable).
		Times(1)

	body := `{"lat":28.6139,"lng":77.209,"emergency_type":"medical","severity":6.0}`
	req := httptest.NewRequest(http.MethodPost, "/dispatch/auto", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchAuto_RaceLost_409(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.dispatcher.EXPECT().
		AutoDispatch(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrConflict).
		Times(1)

	body := `{"lat":28.6139,"lng":77.209,"emergency_type":"medical","severity":6.0}`
	req := httptest.NewRequest(http.MethodPost, "/dispatch/auto", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchAuto_InvalidSeverity_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	body := `{"lat":28.6139,"lng":77.209,"emergency_type":"medical","severity":42.0}`
	req := httptest.NewRequest(http.MethodPost, "/dispatch/auto", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchNearbyResources_TypeFilterPassedThrough(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	m.dispatcher.EXPECT().
		NearbyResources(gomock.Any(), domain.NearbyResourcesRequest{
			Lat:      28.6139,
			Lng:      77.209,
			RadiusKm: 5,
			Types:    []domain.ResourceType{domain.ResourceAmbulance, domain.ResourceDrone},
		}).
		Return([]domain.NearbyResource{}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet,
		"/dispatch/nearby-resources?lat=28.6139&lng=77.209&radius_km=5&type=ambulance&type=drone", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestResourceCreate_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.resources.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil).Times(1)

	body := `{"name":"city ambulance 7","type":"ambulance","lat":28.6139,"lng":77.209}`
	req := httptest.NewRequest(http.MethodPost, "/resources", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rr.Code, rr.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["id"] != id.String() {
		t.Fatalf("id = %s, want %s", got["id"], id)
	}
}

func TestResourceList_InvalidStatus_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/resources?status=sleeping", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestResourceUpdateStatus_NoContent(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.resources.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.UpdateResourceStatusRequest{Status: domain.ResourceOffline}).
		Return(nil).
		Times(1)

	body := `{"status":"offline"}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/resources/%s/status", id), bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestResourceGet_NotFound_404(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.resources.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/resources/"+id.String(), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchActiveList_OK(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	want := []domain.ActiveDispatch{
		{
			Record:       domain.DispatchRecord{ID: uuid.New(), Status: domain.DispatchEnRoute},
			ResourceName: "city ambulance 7",
			ResourceType: domain.ResourceAmbulance,
		},
	}
	m.dispatcher.EXPECT().
		ActiveDispatches(gomock.Any()).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/dispatch/active", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	var got struct {
		Dispatches []domain.ActiveDispatch `json:"dispatches"`
		Count      int                     `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.Count != 1 || got.Dispatches[0].ResourceName != "city ambulance 7" {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestDispatchGet_NotFound_404(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.dispatcher.EXPECT().
		GetDispatch(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/dispatch/"+id.String(), nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchUpdateStatus_NoContent(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.dispatcher.EXPECT().
		UpdateDispatchStatus(gomock.Any(), id, domain.UpdateDispatchStatusRequest{Status: domain.DispatchCompleted}).
		Return(nil).
		Times(1)

	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPut, "/dispatch/"+id.String()+"/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchUpdateStatus_InvalidStatus_400(t *testing.T) {
	t.Parallel()

	_, r := newHandler(t)

	body := `{"status":"teleported"}`
	req := httptest.NewRequest(http.MethodPut, "/dispatch/"+uuid.New().String()+"/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDispatchUpdateStatus_TerminalConflict_409(t *testing.T) {
	t.Parallel()

	m, r := newHandler(t)

	id := uuid.New()
	m.dispatcher.EXPECT().
		UpdateDispatchStatus(gomock.Any(), id, gomock.Any()).
		Return(e.ErrConflict).
		Times(1)

	body := `{"status":"cancelled"}`
	req := httptest.NewRequest(http.MethodPut, "/dispatch/"+id.String()+"/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", rr.Code, rr.Body.String())
	}
}
